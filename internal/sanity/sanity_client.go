package sanity

import (
	"fmt"
	"net/url"

	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

// Client는 호스팅 문서 스토어의 GROQ 쿼리 API 클라이언트입니다.
// (이 앱은 읽기 전용이며, /data/query 엔드포인트 하나만 사용합니다)
type Client struct {
	projectID  string
	dataset    string
	apiVersion string
	token      string
}

// NewClient는 새 쿼리 클라이언트를 생성합니다.
func NewClient(projectID, dataset, apiVersion, token string) *Client {
	return &Client{
		projectID:  projectID,
		dataset:    dataset,
		apiVersion: apiVersion,
		token:      token,
	}
}

// queryEnvelope는 쿼리 API의 표준 응답 포맷입니다.
type queryEnvelope struct {
	Ms     int             `json:"ms"`
	Query  string          `json:"query"`
	Result json.RawMessage `json:"result"`
}

// QueryURL은 GROQ 쿼리를 실행할 전체 URL을 생성합니다.
func (c *Client) QueryURL(groq string) string {
	return fmt.Sprintf("https://%s.api.sanity.io/v%s/data/query/%s?query=%s",
		c.projectID, c.apiVersion, c.dataset, url.QueryEscape(groq))
}

// Query는 GROQ 쿼리를 실행하고 result 배열을 out으로 디코딩합니다.
// (재시도/타임아웃/캐시 없음: 호출마다 독립적인 왕복입니다)
func (c *Client) Query(groq string, out any) error {
	agent := fiber.Get(c.QueryURL(groq))
	if c.token != "" {
		agent.Set(fiber.HeaderAuthorization, "Bearer "+c.token)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("sanity: 쿼리 요청 실패: %w", errs[0])
	}
	if code < 200 || code >= 300 {
		return fmt.Errorf("sanity: 쿼리 실패 (status %d): %s", code, body)
	}

	return decodeResult(body, out)
}

// decodeResult는 응답 바디에서 result 필드만 꺼내 out으로 디코딩합니다.
func decodeResult(body []byte, out any) error {
	var envelope queryEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("sanity: 응답 파싱 실패: %w", err)
	}

	// result가 null이면 디코딩할 것이 없습니다.
	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}

	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("sanity: result 디코딩 실패: %w", err)
	}
	return nil
}
