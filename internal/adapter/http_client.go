package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/webdev-team/access-server/models"
)

// HTTPClientConfig configures the REST client.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// GrantQuery describes the optional filters of the grant search endpoint.
// Nil fields contribute no query parameter. PermissionLevelNull requires the
// permission level to be unset and wins over PermissionLevel when both are
// given.
type GrantQuery struct {
	AccessID            *int64
	UserID              *int64
	PermissionLevel     *string
	PermissionLevelNull bool
}

type httpAccessClient struct {
	client *resty.Client
}

// NewHTTPAccessClient constructs an [AccessClient] speaking to the server
// at cfg.BaseURL.
func NewHTTPAccessClient(cfg HTTPClientConfig) AccessClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpAccessClient{client: cli}
}

func (h *httpAccessClient) GetAccess(ctx context.Context, id int64) (models.Access, error) {
	var access models.Access

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&access).
		Get("/api/access/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Access{}, fmt.Errorf("get access request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Access{}, err
	}

	return access, nil
}

func (h *httpAccessClient) CreateAccess(ctx context.Context, newAccess models.NewAccess) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(newAccess).
		Post("/api/access/")
	if err != nil {
		return fmt.Errorf("create access request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAccessClient) UpdateAccess(ctx context.Context, id int64, partial models.PartialAccess) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(partial).
		Post("/api/access/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("update access request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAccessClient) DeleteAccess(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/api/access/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete access request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAccessClient) SearchGrants(ctx context.Context, query GrantQuery) ([]models.Grant, error) {
	req := h.client.R().SetContext(ctx)

	if query.AccessID != nil {
		req.SetQueryParam("access_id", "exact,"+strconv.FormatInt(*query.AccessID, 10))
	}
	if query.UserID != nil {
		req.SetQueryParam("user_id", "exact,"+strconv.FormatInt(*query.UserID, 10))
	}
	if query.PermissionLevelNull {
		req.SetQueryParam("permission_level", "null")
	} else if query.PermissionLevel != nil {
		req.SetQueryParam("permission_level", "exact,"+*query.PermissionLevel)
	}

	resp, err := req.Get("/api/user_access/")
	if err != nil {
		return nil, fmt.Errorf("search grants request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var grants []models.Grant
	if err = json.Unmarshal(resp.Body(), &grants); err != nil {
		return nil, fmt.Errorf("decoding grants: %w", err)
	}

	return grants, nil
}

// CheckAccess decodes the endpoint's plain-text "true"/"false" body; any
// other body is a protocol violation.
func (h *httpAccessClient) CheckAccess(ctx context.Context, userID, accessID int64) (bool, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/user_access/" + strconv.FormatInt(userID, 10) + "/" + strconv.FormatInt(accessID, 10))
	if err != nil {
		return false, fmt.Errorf("check access request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	switch strings.TrimSpace(string(resp.Body())) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("unexpected check access body: %q", resp.Body())
	}
}

func (h *httpAccessClient) CreateGrant(ctx context.Context, newGrant models.NewGrant) (models.Grant, error) {
	var grant models.Grant

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(newGrant).
		SetResult(&grant).
		Post("/api/user_access/")
	if err != nil {
		return models.Grant{}, fmt.Errorf("create grant request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Grant{}, err
	}

	return grant, nil
}

// UpdateGrant builds the partial body by hand: marshaling PartialGrant
// directly would always emit the permission_level key and turn "leave
// unchanged" into an explicit clear.
func (h *httpAccessClient) UpdateGrant(ctx context.Context, id int64, partial models.PartialGrant) (models.Grant, error) {
	body := map[string]any{
		"access_id": partial.AccessID,
		"user_id":   partial.UserID,
	}
	if partial.PermissionLevel.Set {
		if partial.PermissionLevel.Valid {
			body["permission_level"] = partial.PermissionLevel.Value
		} else {
			body["permission_level"] = nil
		}
	}

	var grant models.Grant

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&grant).
		Post("/api/user_access/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Grant{}, fmt.Errorf("update grant request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Grant{}, err
	}

	return grant, nil
}

func (h *httpAccessClient) DeleteGrant(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/api/user_access/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete grant request: %w", err)
	}

	return mapHTTPError(resp)
}
