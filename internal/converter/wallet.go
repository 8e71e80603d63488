package converter

import (
	"cases_backend/internal/api/dto/wallet"
	"cases_backend/internal/model"
)

func ToLedgerEntryResponses(entries []model.LedgerEntry) []wallet.LedgerEntryResponse {
	result := make([]wallet.LedgerEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = wallet.LedgerEntryResponse{
			Amount:    e.Amount,
			Kind:      string(e.Kind),
			CreatedAt: e.CreatedAt,
			Meta:      e.Meta,
		}
	}
	return result
}

func ToSaleResponse(res model.SaleResult) wallet.SaleResponse {
	return wallet.SaleResponse{
		SoldEntryID: res.Sold.EntryID,
		Amount:      res.Sold.Item.Value,
		Balance:     res.Balance,
	}
}
