package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/ukaji3/trainboard-go/pkg/trainboard/models"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/parser"
)

const (
	defaultSheetsURL = "https://sheets.googleapis.com"
	defaultTokenURL  = "https://oauth2.googleapis.com/token"
	sheetsScope      = "https://www.googleapis.com/auth/spreadsheets.readonly"
	jwtBearerGrant   = "urn:ietf:params:oauth:grant-type:jwt-bearer"
	tokenLifetime    = time.Hour
	// tokens are refreshed this long before they expire
	tokenSkew = time.Minute
)

// ServiceAccount holds the fields of a service account key file used for
// the JWT bearer grant.
type ServiceAccount struct {
	ClientEmail  string `json:"client_email"`
	PrivateKey   string `json:"private_key"`
	PrivateKeyID string `json:"private_key_id"`
	TokenURI     string `json:"token_uri"`
}

// ParseServiceAccount decodes and checks a service account key file.
func ParseServiceAccount(data []byte) (*ServiceAccount, error) {
	var sa ServiceAccount
	if err := json.Unmarshal(data, &sa); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCredentials, err)
	}
	if sa.ClientEmail == "" || sa.PrivateKey == "" {
		return nil, fmt.Errorf("%w: client_email and private_key are required", ErrCredentials)
	}
	if _, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(sa.PrivateKey)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCredentials, err)
	}
	if sa.TokenURI == "" {
		sa.TokenURI = defaultTokenURL
	}
	return &sa, nil
}

// Google reads sheets through the Sheets v4 values API using a service
// account. Access tokens are cached until shortly before expiry.
type Google struct {
	spreadsheetID string
	account       *ServiceAccount
	client        *retryablehttp.Client
	baseURL       string
	ranges        map[string]string
	logger        retryablehttp.LeveledLogger
	now           func() time.Time

	mu     sync.Mutex
	token  string
	expiry time.Time
}

// GoogleOption configures a Google source.
type GoogleOption func(*Google)

// WithBaseURL overrides the Sheets API endpoint.
func WithBaseURL(u string) GoogleOption {
	return func(g *Google) { g.baseURL = strings.TrimRight(u, "/") }
}

// WithRanges limits reads of the named sheets to A1 ranges.
func WithRanges(ranges map[string]string) GoogleOption {
	return func(g *Google) { g.ranges = ranges }
}

// WithRetryClient replaces the HTTP client. A nil client is ignored.
func WithRetryClient(c *retryablehttp.Client) GoogleOption {
	return func(g *Google) {
		if c != nil {
			g.client = c
		}
	}
}

// WithLeveledLogger routes retry logs to l, for example a *slog.Logger.
// It applies to whichever client the source ends up with.
func WithLeveledLogger(l retryablehttp.LeveledLogger) GoogleOption {
	return func(g *Google) { g.logger = l }
}

// NewGoogle returns a source for the spreadsheet using the given key file contents.
func NewGoogle(spreadsheetID string, credentials []byte, opts ...GoogleOption) (*Google, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("google source: spreadsheet id is required")
	}
	sa, err := ParseServiceAccount(credentials)
	if err != nil {
		return nil, err
	}

	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.RetryWaitMin = 200 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.Logger = nil

	g := &Google{
		spreadsheetID: spreadsheetID,
		account:       sa,
		client:        client,
		baseURL:       defaultSheetsURL,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger != nil {
		g.client.Logger = g.logger
	}
	return g, nil
}

// LoadGoogle reads the key file at credentialsFile and calls NewGoogle.
func LoadGoogle(spreadsheetID, credentialsFile string, opts ...GoogleOption) (*Google, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCredentials, err)
	}
	return NewGoogle(spreadsheetID, data, opts...)
}

// accessToken returns a cached token or exchanges a fresh signed assertion.
func (g *Google) accessToken(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if g.token != "" && now.Before(g.expiry.Add(-tokenSkew)) {
		return g.token, nil
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(g.account.PrivateKey))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCredentials, err)
	}
	claims := jwt.MapClaims{
		"iss":   g.account.ClientEmail,
		"scope": sheetsScope,
		"aud":   g.account.TokenURI,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenLifetime).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if g.account.PrivateKeyID != "" {
		tok.Header["kid"] = g.account.PrivateKeyID
	}
	assertion, err := tok.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("%w: sign assertion: %v", ErrCredentials, err)
	}

	form := url.Values{"grant_type": {jwtBearerGrant}, "assertion": {assertion}}
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, g.account.TokenURI, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var out struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := g.doJSON(req, &out); err != nil {
		return "", fmt.Errorf("%w: token exchange: %v", ErrCredentials, err)
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("%w: token exchange returned no access token", ErrCredentials)
	}

	g.token = out.AccessToken
	g.expiry = now.Add(time.Duration(out.ExpiresIn) * time.Second)
	return g.token, nil
}

// statusError is a non-2xx API response.
type statusError struct {
	Code int
	Body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Code, e.Body)
}

func (g *Google) doJSON(req *retryablehttp.Request, out any) error {
	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &statusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (g *Google) get(ctx context.Context, endpoint string, out any) error {
	token, err := g.accessToken(ctx)
	if err != nil {
		return err
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return g.doJSON(req, out)
}

// FetchSheet implements Source.
func (g *Google) FetchSheet(ctx context.Context, name string) (models.Sheet, error) {
	a1 := quoteSheet(name)
	rng, err := rangeFor(g.ranges, name)
	if err != nil {
		return models.Sheet{}, err
	}

	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s",
		g.baseURL, url.PathEscape(g.spreadsheetID), url.PathEscape(a1))
	var out struct {
		Values [][]string `json:"values"`
	}
	if err := g.get(ctx, endpoint, &out); err != nil {
		var se *statusError
		if errors.As(err, &se) && se.Code == http.StatusBadRequest {
			return models.Sheet{}, fmt.Errorf("%w: %s", ErrSheetNotFound, name)
		}
		return models.Sheet{}, err
	}

	values := out.Values
	if rng != nil {
		values = rng.Slice(values)
	}
	return parser.BuildSheet(name, values), nil
}

// SheetNames implements Lister.
func (g *Google) SheetNames(ctx context.Context) ([]string, error) {
	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s?fields=sheets.properties.title",
		g.baseURL, url.PathEscape(g.spreadsheetID))
	var out struct {
		Sheets []struct {
			Properties struct {
				Title string `json:"title"`
			} `json:"properties"`
		} `json:"sheets"`
	}
	if err := g.get(ctx, endpoint, &out); err != nil {
		return nil, err
	}
	names := make([]string, len(out.Sheets))
	for i, s := range out.Sheets {
		names[i] = s.Properties.Title
	}
	return names, nil
}

// quoteSheet returns the sheet title as an A1 reference covering the whole sheet.
func quoteSheet(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
