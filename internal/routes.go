package internal

import (
	"net/http"

	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/controllers"
	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/providers"
)

func InitRoutes(apiController *controllers.ApiController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/collections", http.HandlerFunc(apiController.GetCollections))
	routers.Get("/collections/user", http.HandlerFunc(apiController.GetCollectionsByUser))
	routers.Get("/collection", http.HandlerFunc(apiController.GetCollection))
	routers.Get("/collection/nfts", http.HandlerFunc(apiController.GetCollectionNFTs))
	routers.Get("/nfts/user", http.HandlerFunc(apiController.GetNFTsByUser))
	routers.Get("/nft", http.HandlerFunc(apiController.GetNFT))
	routers.Get("/nft/access", http.HandlerFunc(apiController.GetNFTAccess))
	routers.Get("/catalog", http.HandlerFunc(apiController.GetCatalog))
	routers.Post("/keys", http.HandlerFunc(apiController.IssueKey))
	return routers
}
