package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/valyala/fasthttp"
)

// Paystack talks to the Paystack transaction API.
type Paystack struct {
	client    *fasthttp.Client
	baseURL   string
	secretKey string
	timeout   time.Duration
}

func NewPaystack(baseURL, secretKey string, timeout time.Duration) *Paystack {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Paystack{
		client: &fasthttp.Client{
			Name:                "horion-farms-api",
			MaxIdleConnDuration: 30 * time.Second,
		},
		baseURL:   baseURL,
		secretKey: secretKey,
		timeout:   timeout,
	}
}

func (p *Paystack) Initialize(ctx context.Context, in InitializeRequest) (InitializeResponse, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return InitializeResponse{}, err
	}

	var out InitializeResponse
	err = p.do(ctx, fasthttp.MethodPost, p.baseURL+"/transaction/initialize", body, &out)
	return out, err
}

func (p *Paystack) Verify(ctx context.Context, reference string) (VerifyResponse, error) {
	var out VerifyResponse
	err := p.do(ctx, fasthttp.MethodGet, p.baseURL+"/transaction/verify/"+url.PathEscape(reference), nil, &out)
	return out, err
}

// do performs one request bounded by both ctx and the client timeout.
// Any failure to obtain and decode a response wraps ErrTransport.
func (p *Paystack) do(ctx context.Context, method, uri string, body []byte, out any) error {
	timeout := p.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	if timeout <= 0 {
		return fmt.Errorf("%w: %v", ErrTransport, context.DeadlineExceeded)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(uri)
	req.Header.SetMethod(method)
	req.Header.Set("Authorization", "Bearer "+p.secretKey)
	req.Header.SetContentType("application/json")
	if body != nil {
		req.SetBody(body)
	}

	if err := p.client.DoTimeout(req, resp, timeout); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrTransport, method, uri, err)
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: decode %d response: %v", ErrTransport, resp.StatusCode(), err)
	}
	return nil
}
