package domain

import "errors"

// Domain errors.
var (
	ErrNoSnapshot        = errors.New("aucune donnée en cache")
	ErrInvalidWebhookURL = errors.New("URL de webhook Discord invalide")
	ErrUnexpectedStatus  = errors.New("statut HTTP inattendu")
)
