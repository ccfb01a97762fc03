package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/jmallard/brood/internal/security"
)

const alertReferenceAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// LoggingPaymentCollaborator stands in for a real payment processor. It
// approves every charge and logs it, issuing a fresh transaction id.
type LoggingPaymentCollaborator struct{}

func NewLoggingPaymentCollaborator() *LoggingPaymentCollaborator {
	return &LoggingPaymentCollaborator{}
}

func (collaborator *LoggingPaymentCollaborator) Charge(ctx context.Context, paymentMethod string, amount float64) (PaymentResult, error) {
	transactionID := "TXN_" + uuid.NewString()
	log.Printf("processing PENALTY of $%.2f via %s (transaction %s)", amount, paymentMethod, transactionID)
	return PaymentResult{Success: true, TransactionID: transactionID}, nil
}

// LoggingSocialCollaborator stands in for the social-alert network. It logs
// the breach broadcast and issues a short reference code.
type LoggingSocialCollaborator struct{}

func NewLoggingSocialCollaborator() *LoggingSocialCollaborator {
	return &LoggingSocialCollaborator{}
}

func (collaborator *LoggingSocialCollaborator) Notify(ctx context.Context, teammateID string, word string) (SocialResult, error) {
	reference, err := security.RandomString(8, alertReferenceAlphabet)
	if err != nil {
		return SocialResult{}, err
	}
	log.Printf("sending alert to teammate %s: user failed %s (ref %s)", teammateID, word, reference)
	return SocialResult{Sent: true, ReferenceID: reference}, nil
}
