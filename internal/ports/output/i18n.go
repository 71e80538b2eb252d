package output

import (
	"financement/internal/domain"
	"financement/internal/domain/entities"
)

// Labels gives the immutable label set of a locale.
type Labels interface {
	Labels(locale domain.Locale) entities.LabelSet
}
