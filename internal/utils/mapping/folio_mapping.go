package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/amphorabeer/pms_backend/internal/core/domain"
	"github.com/amphorabeer/pms_backend/internal/models"
)

// ToModelFolio converts a domain Folio to a model Folio. Transactions are
// persisted separately and not carried on the model.
func ToModelFolio(d domain.Folio) models.Folio {
	m := models.Folio{
		FolioID:       d.FolioID,
		FolioNumber:   d.FolioNumber,
		PropertyID:    d.PropertyID,
		ReservationID: d.ReservationID,
		GuestName:     d.GuestName,
		RoomNumber:    d.RoomNumber,
		Balance:       d.Balance,
		CreditLimit:   d.CreditLimit,
		PaymentMethod: string(d.PaymentMethod),
		Status:        models.FolioStatus(d.Status),
		ClosedDate:    d.ClosedDate,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
	if d.ClosedBy != "" {
		m.ClosedBy = &d.ClosedBy
	}
	if d.CloseReason != "" {
		m.CloseReason = &d.CloseReason
	}
	return m
}

// ToDomainFolio converts a model Folio to a domain Folio.
func ToDomainFolio(m models.Folio) domain.Folio {
	d := domain.Folio{
		FolioID:       m.FolioID,
		FolioNumber:   m.FolioNumber,
		PropertyID:    m.PropertyID,
		ReservationID: m.ReservationID,
		GuestName:     m.GuestName,
		RoomNumber:    m.RoomNumber,
		Balance:       m.Balance,
		CreditLimit:   m.CreditLimit,
		PaymentMethod: domain.PaymentMethodOf(m.PaymentMethod),
		Status:        domain.FolioStatus(m.Status),
		ClosedDate:    m.ClosedDate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.ClosedBy != nil {
		d.ClosedBy = *m.ClosedBy
	}
	if m.CloseReason != nil {
		d.CloseReason = *m.CloseReason
	}
	return d
}

// ToModelFolioTransaction converts a domain FolioTransaction to its persisted
// shape, encoding the tax lines as JSON.
func ToModelFolioTransaction(d domain.FolioTransaction) (models.FolioTransaction, error) {
	m := models.FolioTransaction{
		TransactionID:  d.TransactionID,
		FolioID:        d.FolioID,
		TxnDate:        d.Date,
		TxnTime:        d.Time,
		TxnType:        string(d.Type),
		Category:       d.Category,
		Description:    d.Description,
		Debit:          d.Debit,
		Credit:         d.Credit,
		Balance:        d.Balance,
		PostedBy:       d.PostedBy,
		PostedAt:       d.PostedAt,
		ReferenceID:    d.ReferenceID,
		NightAuditDate: d.NightAuditDate,
	}
	if len(d.TaxDetails) > 0 {
		payload, err := json.Marshal(d.TaxDetails)
		if err != nil {
			return models.FolioTransaction{}, fmt.Errorf("failed to encode tax details for transaction %s: %w", d.TransactionID, err)
		}
		m.TaxDetails = payload
	}
	return m, nil
}

// ToDomainFolioTransaction converts a model FolioTransaction to a domain
// FolioTransaction, decoding the tax lines.
func ToDomainFolioTransaction(m models.FolioTransaction) (domain.FolioTransaction, error) {
	d := domain.FolioTransaction{
		TransactionID:  m.TransactionID,
		FolioID:        m.FolioID,
		Date:           m.TxnDate,
		Time:           m.TxnTime,
		Type:           domain.TransactionType(m.TxnType),
		Category:       m.Category,
		Description:    m.Description,
		Debit:          m.Debit,
		Credit:         m.Credit,
		Balance:        m.Balance,
		PostedBy:       m.PostedBy,
		PostedAt:       m.PostedAt,
		ReferenceID:    m.ReferenceID,
		NightAuditDate: m.NightAuditDate,
	}
	if len(m.TaxDetails) > 0 {
		if err := json.Unmarshal(m.TaxDetails, &d.TaxDetails); err != nil {
			return domain.FolioTransaction{}, fmt.Errorf("failed to decode tax details for transaction %s: %w", m.TransactionID, err)
		}
	}
	return d, nil
}

// ToDomainFolioTransactionSlice converts a slice of model FolioTransactions.
func ToDomainFolioTransactionSlice(ms []models.FolioTransaction) ([]domain.FolioTransaction, error) {
	ds := make([]domain.FolioTransaction, len(ms))
	for i, m := range ms {
		d, err := ToDomainFolioTransaction(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
