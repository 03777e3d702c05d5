package dhlottery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchRound_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "getLottoNumber", r.URL.Query().Get("method"))
		assert.Equal(t, "1100", r.URL.Query().Get("drwNo"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"returnValue": "success",
			"drwNo": 1100,
			"drwNoDate": "2023-12-30",
			"drwtNo1": 15, "drwtNo2": 4, "drwtNo3": 23, "drwtNo4": 31, "drwtNo5": 42, "drwtNo6": 8,
			"bnusNo": 19,
			"totSellamnt": 111000000000,
			"firstWinamnt": 2874396400,
			"firstPrzwnerCo": 9
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, false)
	result, err := client.FetchRound(context.Background(), 1100)
	require.NoError(t, err)

	assert.Equal(t, 1100, result.Round)
	assert.Equal(t, time.Date(2023, 12, 30, 0, 0, 0, 0, time.UTC), result.Date)
	assert.Equal(t, []int{4, 8, 15, 23, 31, 42}, result.Numbers) // sorted
	assert.Equal(t, 19, result.BonusNumber)
	assert.Equal(t, int64(111000000000), result.TotalSales)
	assert.Equal(t, int64(2874396400), result.FirstPrizeAmount)
	assert.Equal(t, 9, result.FirstPrizeWinners)
}

func TestFetchRound_NotDrawnYet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"returnValue": "fail"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, false)
	_, err := client.FetchRound(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrRoundNotDrawn)
}

func TestFetchRound_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, false)
	_, err := client.FetchRound(context.Background(), 1100)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRoundNotDrawn)
}

func TestFetchRound_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL, false)
	_, err := client.FetchRound(context.Background(), 1100)
	assert.Error(t, err)
}

func TestMockFetchRound_Deterministic(t *testing.T) {
	client := NewClient("", true)

	first, err := client.FetchRound(context.Background(), 42)
	require.NoError(t, err)
	second, err := client.FetchRound(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 42, first.Round)
	assert.Len(t, first.Numbers, 6)
	for i, n := range first.Numbers {
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 45)
		if i > 0 {
			assert.Greater(t, n, first.Numbers[i-1])
		}
	}
}

func TestMockFetchRound_BeyondLatest(t *testing.T) {
	client := NewClient("", true)

	_, err := client.FetchRound(context.Background(), MockLatestRound+1)
	assert.ErrorIs(t, err, ErrRoundNotDrawn)

	_, err = client.FetchRound(context.Background(), 0)
	assert.ErrorIs(t, err, ErrRoundNotDrawn)
}
