package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kiket/kiket/pkg/log"
)

// RemoteIssue is one finding from the platform's authoritative manifest
// validation. It mirrors the local engine's issue shape.
type RemoteIssue struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// RemoteValidation is the platform's response to a validation request.
type RemoteValidation struct {
	Valid  bool          `json:"valid"`
	Issues []RemoteIssue `json:"issues"`
}

// PublishResult is the platform's response to a marketplace publish.
type PublishResult struct {
	ExtensionID string `json:"extension_id"`
	Version     string `json:"version"`
	Status      string `json:"status"`
}

// manifestPayload wraps the raw manifest for transport.
type manifestPayload struct {
	Manifest string `json:"manifest"`
}

// ExtensionClient provides methods for marketplace extension operations.
type ExtensionClient struct {
	client *Client
	logger log.Logger
}

// Validate submits the serialized manifest for authoritative re-validation.
func (ec *ExtensionClient) Validate(ctx context.Context, manifest []byte) (*RemoteValidation, error) {
	if len(manifest) == 0 {
		return nil, fmt.Errorf("manifest is empty")
	}

	ec.logger.Debug("Submitting manifest for remote validation", log.Int("bytes", len(manifest)))

	var result RemoteValidation
	err := ec.client.do(ctx, http.MethodPost, "/extensions/validate", manifestPayload{Manifest: string(manifest)}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Publish submits the manifest to the marketplace.
func (ec *ExtensionClient) Publish(ctx context.Context, manifest []byte) (*PublishResult, error) {
	if len(manifest) == 0 {
		return nil, fmt.Errorf("manifest is empty")
	}

	ec.logger.Debug("Publishing extension", log.Int("bytes", len(manifest)))

	var result PublishResult
	err := ec.client.do(ctx, http.MethodPost, "/extensions/publish", manifestPayload{Manifest: string(manifest)}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
