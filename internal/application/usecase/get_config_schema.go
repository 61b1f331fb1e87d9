package usecase

import (
	"context"
	"strings"

	"github.com/bnema/wui/internal/application/port"
	"github.com/bnema/wui/internal/domain/entity"
)

// GetConfigSchemaUseCase lists the configuration keys the host understands.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

// NewGetConfigSchemaUseCase creates a new GetConfigSchemaUseCase.
func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{provider: provider}
}

// GetConfigSchemaInput filters the listed keys.
type GetConfigSchemaInput struct {
	// Section keeps only keys of one section, compared case-insensitively.
	// Empty keeps everything.
	Section string
}

// GetConfigSchemaOutput contains the schema information.
type GetConfigSchemaOutput struct {
	Keys []entity.ConfigKeyInfo
}

// Execute returns the configuration keys with their metadata.
func (uc *GetConfigSchemaUseCase) Execute(_ context.Context, input GetConfigSchemaInput) (*GetConfigSchemaOutput, error) {
	keys := uc.provider.GetSchema()
	if input.Section == "" {
		return &GetConfigSchemaOutput{Keys: keys}, nil
	}

	filtered := make([]entity.ConfigKeyInfo, 0, len(keys))
	for _, key := range keys {
		if strings.EqualFold(key.Section, input.Section) {
			filtered = append(filtered, key)
		}
	}
	return &GetConfigSchemaOutput{Keys: filtered}, nil
}
