package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Abishekkhanal/channelManager2/internal/constants"
	"github.com/Abishekkhanal/channelManager2/internal/db/repositories"
	"github.com/Abishekkhanal/channelManager2/internal/models/dtos"
	gormModels "github.com/Abishekkhanal/channelManager2/internal/models/gorm"
)

// ConfigService owns OTA configuration lifecycle. Any ota_name string is
// accepted at creation (matching the original system's laxness); names
// without a registered adapter simply fail at sync time.
type ConfigService struct {
	repo *repositories.OTAConfigRepo
}

func NewConfigService(repo *repositories.OTAConfigRepo) *ConfigService {
	return &ConfigService{repo: repo}
}

// Create validates and inserts a new configuration. ota_name is unique
// among configurations.
func (s *ConfigService) Create(ctx context.Context, req *dtos.CreateOTAConfigRequest) (*dtos.OTAConfigResponse, error) {
	otaName := string(constants.NormalizePartner(req.OTAName))
	if otaName == "" {
		return nil, ErrMissingOTAName
	}
	if strings.TrimSpace(req.EndpointURL) == "" {
		return nil, ErrMissingEndpoint
	}

	existing, err := s.repo.GetByName(ctx, otaName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateOTAName
	}

	frequency := req.SyncFrequency
	if frequency <= 0 {
		frequency = 60
	}

	config := &gormModels.OTAConfig{
		OTAName:       otaName,
		APIKey:        req.APIKey,
		APIUsername:   req.APIUsername,
		APIPassword:   req.APIPassword,
		EndpointURL:   req.EndpointURL,
		HotelID:       req.HotelID,
		IsActive:      true,
		SyncFrequency: frequency,
	}

	if err := s.repo.Create(ctx, config); err != nil {
		return nil, err
	}

	resp := MaskConfig(config)
	return &resp, nil
}

// Update applies a partial update. Empty credential strings leave the
// stored secrets untouched.
func (s *ConfigService) Update(ctx context.Context, id string, req *dtos.UpdateOTAConfigRequest) (*dtos.OTAConfigResponse, error) {
	config, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, ErrConfigNotFound
	}

	if req.APIKey != nil && *req.APIKey != "" {
		config.APIKey = *req.APIKey
	}
	if req.APIUsername != nil && *req.APIUsername != "" {
		config.APIUsername = *req.APIUsername
	}
	if req.APIPassword != nil && *req.APIPassword != "" {
		config.APIPassword = *req.APIPassword
	}
	if req.EndpointURL != nil && *req.EndpointURL != "" {
		config.EndpointURL = *req.EndpointURL
	}
	if req.HotelID != nil {
		config.HotelID = *req.HotelID
	}
	if req.IsActive != nil {
		config.IsActive = *req.IsActive
	}
	if req.SyncFrequency != nil && *req.SyncFrequency > 0 {
		config.SyncFrequency = *req.SyncFrequency
	}

	if err := s.repo.Update(ctx, config); err != nil {
		return nil, err
	}

	resp := MaskConfig(config)
	return &resp, nil
}

// List returns every configuration with secrets masked
func (s *ConfigService) List(ctx context.Context) ([]dtos.OTAConfigResponse, error) {
	configs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dtos.OTAConfigResponse, len(configs))
	for i := range configs {
		out[i] = MaskConfig(&configs[i])
	}
	return out, nil
}

// Delete removes a configuration. Sync logs referencing it are kept for
// audit; listings report their partner as "unknown" afterwards. The delete
// itself decides existence, so a concurrent delete cannot slip between a
// read and the mutation.
func (s *ConfigService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrConfigNotFound
		}
		return err
	}
	return nil
}

// MaskConfig converts a stored configuration to its client-facing view.
// api_key keeps a last-4 suffix for recognition; the password never leaves
// the server in any form.
func MaskConfig(config *gormModels.OTAConfig) dtos.OTAConfigResponse {
	return dtos.OTAConfigResponse{
		ID:            config.ID,
		OTAName:       config.OTAName,
		APIKey:        maskSecret(config.APIKey),
		APIUsername:   config.APIUsername,
		EndpointURL:   config.EndpointURL,
		HotelID:       config.HotelID,
		IsActive:      config.IsActive,
		LastSyncAt:    config.LastSyncAt,
		SyncFrequency: config.SyncFrequency,
		CreatedAt:     config.CreatedAt,
	}
}

func maskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return "****"
	}
	return "****" + secret[len(secret)-4:]
}
