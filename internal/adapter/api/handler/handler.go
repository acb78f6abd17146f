package handler

import (
	"nebulamarket/internal/usecase"
)

var (
	marketplaceHandler *MarketplaceHandler
)

func Setup(marketplaceUseCase *usecase.MarketplaceUseCase) {
	marketplaceHandler = NewMarketplaceHandler(marketplaceUseCase)
}

func GetMarketplaceHandler() *MarketplaceHandler {
	return marketplaceHandler
}
