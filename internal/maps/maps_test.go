package maps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

// fakeMaps serves canned Google Maps responses keyed by request path.
func fakeMaps(t *testing.T, bodies map[string]string) (*httptest.Server, *[]*http.Request) {
	t.Helper()
	var (
		mu   sync.Mutex
		seen []*http.Request
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r)
		mu.Unlock()
		body, ok := bodies[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func TestHandle_EnsureIsIdempotent(t *testing.T) {
	h := NewHandle("test-key")

	var wg sync.WaitGroup
	clients := make([]*maps.Client, 8)
	for i := range clients {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := h.Ensure()
			assert.NoError(t, err)
			clients[i] = c
		}(i)
	}
	wg.Wait()

	require.NotNil(t, clients[0])
	for _, c := range clients[1:] {
		assert.Same(t, clients[0], c)
	}
	assert.True(t, h.Configured())
}

func TestHandle_MissingKey(t *testing.T) {
	h := NewHandle("")
	for i := 0; i < 2; i++ {
		_, err := h.Ensure()
		assert.ErrorIs(t, err, ErrMissingAPIKey)
	}
	assert.False(t, h.Configured())

	var nilHandle *Handle
	_, err := nilHandle.Ensure()
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestRouteService_DrivingDistanceKm(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantKm  float64
		wantErr string
	}{
		{
			name:   "First route first leg in km",
			body:   `{"status":"OK","routes":[{"legs":[{"distance":{"text":"50.4 km","value":50400}}]},{"legs":[{"distance":{"value":1}}]}]}`,
			wantKm: 50.4,
		},
		{
			name:    "No route",
			body:    `{"status":"ZERO_RESULTS","routes":[]}`,
			wantErr: "directions failed: ZERO_RESULTS",
		},
		{
			name:    "API status error",
			body:    `{"status":"REQUEST_DENIED","error_message":"The provided API key is invalid."}`,
			wantErr: "directions failed: REQUEST_DENIED",
		},
		{
			name:    "Zero length leg",
			body:    `{"status":"OK","routes":[{"legs":[{"distance":{"text":"0 m","value":0}}]}]}`,
			wantErr: "directions failed: NO_DISTANCE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, seen := fakeMaps(t, map[string]string{"/maps/api/directions/json": tt.body})
			s := NewRouteService(NewHandle("test-key", maps.WithBaseURL(srv.URL)), "in", "en")

			km, err := s.DrivingDistanceKm(context.Background(), "Pune", "Mumbai")
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantKm, km, 1e-9)

			require.Len(t, *seen, 1)
			q := (*seen)[0].URL.Query()
			assert.Equal(t, "driving", q.Get("mode"))
			assert.Equal(t, "Pune", q.Get("origin"))
			assert.Equal(t, "in", q.Get("region"))
		})
	}
}

func TestRouteService_MissingKey(t *testing.T) {
	_, err := NewRouteService(NewHandle(""), "", "").DrivingDistanceKm(context.Background(), "A", "B")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestPlacesService_Autocomplete(t *testing.T) {
	srv, seen := fakeMaps(t, map[string]string{
		"/maps/api/place/autocomplete/json": `{"status":"OK","predictions":[
			{"description":"Durgapur, West Bengal, India","place_id":"p1"},
			{"description":"Durgapur Railway Station","place_id":"p2"}]}`,
	})
	s := NewPlacesService(NewHandle("test-key", maps.WithBaseURL(srv.URL)), "IN", "en")

	got, err := s.Autocomplete(context.Background(), " durga ", KindCity)
	require.NoError(t, err)
	assert.Equal(t, []Suggestion{
		{Description: "Durgapur, West Bengal, India", PlaceID: "p1"},
		{Description: "Durgapur Railway Station", PlaceID: "p2"},
	}, got)

	require.Len(t, *seen, 1)
	q := (*seen)[0].URL.Query()
	assert.Equal(t, "durga", q.Get("input"))
	assert.Equal(t, "(cities)", q.Get("types"))
	assert.Equal(t, "country:in", q.Get("components"))
}

func TestPlacesService_AutocompleteEmptyInput(t *testing.T) {
	_, err := NewPlacesService(NewHandle("k"), "", "").Autocomplete(context.Background(), "  ", KindAddress)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestPlacesService_Resolve(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "Formatted address",
			body: `{"status":"OK","result":{"formatted_address":"City Centre, Durgapur, West Bengal 713216, India","name":"City Centre"}}`,
			want: "City Centre, Durgapur, West Bengal 713216, India",
		},
		{
			name: "Falls back to name",
			body: `{"status":"OK","result":{"name":"Kazi Nazrul Islam Airport"}}`,
			want: "Kazi Nazrul Islam Airport",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := fakeMaps(t, map[string]string{"/maps/api/place/details/json": tt.body})
			s := NewPlacesService(NewHandle("test-key", maps.WithBaseURL(srv.URL)), "in", "en")

			got, err := s.Resolve(context.Background(), "place-1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAPIStatus(t *testing.T) {
	assert.Equal(t, "OVER_QUERY_LIMIT", apiStatus(errString("maps: OVER_QUERY_LIMIT - slow down")))
	assert.Equal(t, "dial tcp: refused", apiStatus(errString("dial tcp: refused")))
}

type errString string

func (e errString) Error() string { return string(e) }
