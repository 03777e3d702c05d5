package dhlottery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"
)

const (
	// DefaultBaseURL is the official Lotto 6/45 result endpoint
	DefaultBaseURL = "https://www.dhlottery.co.kr/common.do"

	// The endpoint rejects requests without a browser User-Agent
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	dateLayout = "2006-01-02"
)

// ErrRoundNotDrawn is returned when the upstream reports no result for the
// requested round, i.e. the round has not been drawn yet.
var ErrRoundNotDrawn = errors.New("dhlottery: round not drawn yet")

// Client represents a dhlottery draw result API client
type Client struct {
	BaseURL string
	MockAPI bool
	client  *http.Client
}

// DrawResult is one round's result as returned by the upstream API
type DrawResult struct {
	Round             int
	Date              time.Time
	Numbers           []int // six numbers, ascending
	BonusNumber       int
	TotalSales        int64
	FirstPrizeAmount  int64
	FirstPrizeWinners int
}

// drawResponse mirrors the upstream JSON document
type drawResponse struct {
	ReturnValue       string `json:"returnValue"`
	Round             int    `json:"drwNo"`
	Date              string `json:"drwNoDate"`
	No1               int    `json:"drwtNo1"`
	No2               int    `json:"drwtNo2"`
	No3               int    `json:"drwtNo3"`
	No4               int    `json:"drwtNo4"`
	No5               int    `json:"drwtNo5"`
	No6               int    `json:"drwtNo6"`
	BonusNumber       int    `json:"bnusNo"`
	TotalSales        int64  `json:"totSellamnt"`
	FirstPrizeAmount  int64  `json:"firstWinamnt"`
	FirstPrizeWinners int    `json:"firstPrzwnerCo"`
}

// NewClient creates a new dhlottery client
func NewClient(baseURL string, mockAPI bool) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		MockAPI: mockAPI,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchRound retrieves a single round's result
func (c *Client) FetchRound(ctx context.Context, round int) (*DrawResult, error) {
	if c.MockAPI {
		return c.mockFetchRound(round)
	}

	u := fmt.Sprintf("%s?method=getLottoNumber&drwNo=%d", c.BaseURL, round)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dhlottery fetch round %d: %w", round, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("dhlottery read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dhlottery: status %d, body: %s", resp.StatusCode, string(body))
	}

	var raw drawResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("dhlottery decode: %w", err)
	}
	if raw.ReturnValue != "success" {
		return nil, ErrRoundNotDrawn
	}

	return raw.toResult()
}

func (r *drawResponse) toResult() (*DrawResult, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return nil, fmt.Errorf("dhlottery: bad draw date %q: %w", r.Date, err)
	}

	nums := []int{r.No1, r.No2, r.No3, r.No4, r.No5, r.No6}
	sort.Ints(nums)

	return &DrawResult{
		Round:             r.Round,
		Date:              date,
		Numbers:           nums,
		BonusNumber:       r.BonusNumber,
		TotalSales:        r.TotalSales,
		FirstPrizeAmount:  r.FirstPrizeAmount,
		FirstPrizeWinners: r.FirstPrizeWinners,
	}, nil
}
