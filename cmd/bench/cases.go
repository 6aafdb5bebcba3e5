// README: Smoke cases for the quote and booking flow; includes HTTP, DB, Redis, and throughput checks.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"gocab/internal/modules/booking"
	"gocab/internal/modules/catalog"
	"gocab/internal/modules/pricing"
	"gocab/internal/modules/tripctx"
)

const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
	StatusSkip = "SKIP"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
	db    *pgxpool.Pool
	redis *redis.Client
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name  string
	Focus string
	Run   func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	if r.cfg.DSN != "" {
		if db, err := pgxpool.New(ctx, r.cfg.DSN); err == nil {
			r.db = db
		}
	}
	if r.cfg.RedisAddr != "" {
		r.redis = redis.NewClient(&redis.Options{Addr: r.cfg.RedisAddr})
	}

	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		res := tc.Run(ctx, r)
		res.Name = tc.Name
		results = append(results, res)
		fmt.Printf("%-5s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}

	if r.db != nil {
		r.db.Close()
	}
	if r.redis != nil {
		_ = r.redis.Close()
	}

	return results
}

// sampleTrip is a one way trip with a sedan already chosen on the cab list.
func sampleTrip() tripctx.Context {
	tc := tripctx.New(pricing.TripRequest{
		Type:        pricing.TripOneWay,
		Origin:      "Pune",
		Destination: "Mumbai",
		PickupDate:  "2026-01-10",
		PickupTime:  "09:00",
	})
	return tc.WithOutstationQuote(pricing.OutstationQuote{
		VehicleKey:  catalog.VehicleSedan,
		VehicleName: "Sedan",
		Price:       1000,
		DistanceKm:  150,
	})
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL
	return []TestCase{
		{
			Name:  "Env: Postgres connect",
			Focus: "rate overrides reachable",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.db == nil {
					return Result{Status: StatusSkip, Note: "db not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.db.Ping(ctx); err != nil {
					return Result{Status: StatusFail, Note: err.Error()}
				}
				return Result{Status: StatusPass}
			},
		},
		{
			Name:  "Env: Redis connect",
			Focus: "rate limiter reachable",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.redis == nil {
					return Result{Status: StatusSkip, Note: "redis not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.redis.Ping(ctx).Err(); err != nil {
					return Result{Status: StatusFail, Note: err.Error()}
				}
				return Result{Status: StatusPass}
			},
		},
		{
			Name:  "Migration: apply (optional)",
			Focus: "apply catalog migration SQL",
			Run: func(ctx context.Context, r *Runner) Result {
				if !r.cfg.ApplyMigration {
					return Result{Status: StatusSkip, Note: "apply-migration=false"}
				}
				if r.db == nil {
					return Result{Status: StatusFail, Note: "db not configured"}
				}
				sql, err := os.ReadFile(r.cfg.MigrationPath)
				if err != nil {
					return Result{Status: StatusFail, Note: err.Error()}
				}
				for _, s := range splitSQL(string(sql)) {
					if _, err := r.db.Exec(ctx, s); err != nil {
						return Result{Status: StatusFail, Note: err.Error()}
					}
				}
				return Result{Status: StatusPass}
			},
		},
		{
			Name:  "Migration: tables exist",
			Focus: "tables named in the migration exist",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.db == nil {
					return Result{Status: StatusSkip, Note: "db not configured"}
				}
				tables, err := extractTables(r.cfg.MigrationPath)
				if err != nil {
					return Result{Status: StatusFail, Note: err.Error()}
				}
				for _, t := range tables {
					var exists bool
					err := r.db.QueryRow(ctx,
						"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name=$1)",
						t,
					).Scan(&exists)
					if err != nil {
						return Result{Status: StatusFail, Note: err.Error()}
					}
					if !exists {
						return Result{Status: StatusFail, Note: "missing table: " + t}
					}
				}
				return Result{Status: StatusPass}
			},
		},

		statusCase("API: health", http.MethodGet, base+"/health", nil, http.StatusOK),

		{
			Name:  "Catalog: vehicles, packages and add-ons",
			Focus: "catalog is complete",
			Run: func(ctx context.Context, r *Runner) Result {
				var out struct {
					Vehicles []catalog.Vehicle      `json:"vehicles"`
					Packages []catalog.LocalPackage `json:"packages"`
					Addons   []catalog.Addon        `json:"addons"`
				}
				res, status := r.call(ctx, http.MethodGet, base+"/api/catalog", nil, &out)
				if res.Status == StatusFail {
					return res
				}
				if status != http.StatusOK {
					return fail(res, "status=%d", status)
				}
				if len(out.Vehicles) == 0 || len(out.Packages) == 0 {
					return fail(res, "vehicles=%d packages=%d", len(out.Vehicles), len(out.Packages))
				}
				for _, v := range out.Vehicles {
					for _, p := range out.Packages {
						if _, ok := v.Local.BaseByPackage[p.Key]; !ok {
							return fail(res, "%s has no price for %s", v.Key, p.Key)
						}
					}
				}
				res.Note = fmt.Sprintf("vehicles=%d packages=%d addons=%d", len(out.Vehicles), len(out.Packages), len(out.Addons))
				return res
			},
		},
		{
			Name:  "Search: form -> quotes query",
			Focus: "search form encodes the trip",
			Run: func(ctx context.Context, r *Runner) Result {
				var out struct {
					Query string `json:"query"`
				}
				res, status := r.call(ctx, http.MethodPost, base+"/api/search", tripctx.SearchForm{
					Tab:  string(pricing.TripOneWay),
					From: "Pune",
					To:   "Mumbai",
				}, &out)
				if res.Status == StatusFail {
					return res
				}
				if status != http.StatusOK {
					return fail(res, "status=%d", status)
				}
				q, err := url.ParseQuery(out.Query)
				if err != nil {
					return fail(res, "bad query: %v", err)
				}
				if q.Get(tripctx.KeyOrigin) != "Pune" || q.Get(tripctx.KeyDestination) != "Mumbai" {
					return fail(res, "query=%s", out.Query)
				}
				return res
			},
		},
		{
			Name:  "Quotes: local packages sorted by price",
			Focus: "no distance lookup for local",
			Run: func(ctx context.Context, r *Runner) Result {
				tc := tripctx.New(pricing.TripRequest{
					Type:         pricing.TripLocal,
					City:         "Pune",
					LocalPackage: catalog.Package8h80km,
				})
				var out struct {
					ActivePackage catalog.PackageKey `json:"activePackage"`
					Packages      []struct {
						Quotes []pricing.LocalQuote `json:"quotes"`
					} `json:"packages"`
				}
				res, status := r.call(ctx, http.MethodGet, base+"/api/quotes?"+tc.Query(), nil, &out)
				if res.Status == StatusFail {
					return res
				}
				if status != http.StatusOK {
					return fail(res, "status=%d", status)
				}
				if out.ActivePackage != catalog.Package8h80km {
					return fail(res, "activePackage=%s", out.ActivePackage)
				}
				for _, g := range out.Packages {
					sorted := sort.SliceIsSorted(g.Quotes, func(i, j int) bool {
						return g.Quotes[i].BasePrice < g.Quotes[j].BasePrice
					})
					if !sorted {
						return fail(res, "group not sorted by price")
					}
				}
				return res
			},
		},
		errorCase("Quotes: missing route -> 400", http.MethodGet,
			base+"/api/quotes?"+tripctx.New(pricing.TripRequest{Type: pricing.TripOneWay, Origin: "Pune"}).Query(),
			nil, http.StatusBadRequest, pricing.ErrMissingRoute.Error()),
		errorCase("Quotes: missing city -> 400", http.MethodGet,
			base+"/api/quotes?"+tripctx.New(pricing.TripRequest{Type: pricing.TripLocal}).Query(),
			nil, http.StatusBadRequest, pricing.ErrMissingCity.Error()),
		{
			Name:  "Coupon: known code",
			Focus: "flat discount",
			Run: func(ctx context.Context, r *Runner) Result {
				var out booking.CouponResult
				res, status := r.call(ctx, http.MethodPost, base+"/api/coupons/apply", map[string]any{"code": " gocab50 "}, &out)
				if res.Status == StatusFail {
					return res
				}
				if status != http.StatusOK || !out.Valid || out.Discount != 50 {
					return fail(res, "status=%d valid=%t discount=%d", status, out.Valid, out.Discount)
				}
				return res
			},
		},
		{
			Name:  "Booking: totals with add-on and coupon",
			Focus: "base + add-ons - discount, part pay",
			Run: func(ctx context.Context, r *Runner) Result {
				var out booking.Pricing
				res, status := r.call(ctx, http.MethodPost, base+"/api/booking/price", map[string]any{
					"trip":        sampleTrip().Query(),
					"addons":      []string{"expressway"},
					"coupon":      "GOCAB50",
					"paymentMode": string(booking.PayPart),
				}, &out)
				if res.Status == StatusFail {
					return res
				}
				if status != http.StatusOK {
					return fail(res, "status=%d", status)
				}
				want := booking.ComputeTotals(1000, []catalog.Addon{{ID: "expressway", PriceValue: 415}}, 50, booking.PayPart)
				if out.Totals != want {
					return fail(res, "totals=%+v want %+v", out.Totals, want)
				}
				return res
			},
		},
		errorCase("Booking: proceed without name -> 400", http.MethodPost, base+"/api/booking/proceed", map[string]any{
			"trip":           sampleTrip().Query(),
			"phone":          "9999999999",
			"pickupLocation": "Pune",
			"dropLocation":   "Mumbai",
		}, http.StatusBadRequest, booking.ErrMissingFullName.Error()),
		{
			Name:  "Booking: proceed",
			Focus: "confirmation with reference",
			Run: func(ctx context.Context, r *Runner) Result {
				var out booking.Confirmation
				res, status := r.call(ctx, http.MethodPost, base+"/api/booking/proceed", map[string]any{
					"trip":           sampleTrip().Query(),
					"fullName":       "Bench User",
					"phone":          "9999999999",
					"pickupLocation": "Pune",
					"dropLocation":   "Mumbai",
					"paymentMode":    string(booking.PayFull),
				}, &out)
				if res.Status == StatusFail {
					return res
				}
				if status != http.StatusOK || out.Reference == "" {
					return fail(res, "status=%d reference=%q", status, out.Reference)
				}
				res.Note = "reference=" + out.Reference
				return res
			},
		},

		{
			Name:  "Perf: catalog throughput",
			Focus: "read-only endpoint under load",
			Run: func(ctx context.Context, r *Runner) Result {
				return perfLoad(ctx, r, http.MethodGet, base+"/api/catalog", nil)
			},
		},
		{
			Name:  "Perf: booking price throughput",
			Focus: "totals endpoint under load",
			Run: func(ctx context.Context, r *Runner) Result {
				return perfLoad(ctx, r, http.MethodPost, base+"/api/booking/price", map[string]any{
					"trip":   sampleTrip().Query(),
					"addons": []string{"luggage"},
				})
			},
		},
	}
}

// call sends body as JSON and decodes a 2xx response into out.
func (r *Runner) call(ctx context.Context, method, url string, body, out any) (Result, int) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return Result{Status: StatusFail, Note: err.Error()}, 0
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return Result{Status: StatusFail, Note: err.Error()}, 0
	}
	req.Header.Set("Content-Type", "application/json")
	start := time.Now()
	resp, err := r.httpc.Do(req)
	if err != nil {
		return Result{Status: StatusFail, Note: err.Error()}, 0
	}
	defer resp.Body.Close()
	latency := time.Since(start)

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
			return Result{Status: StatusFail, Latency: latency, Note: "decode: " + err.Error()}, resp.StatusCode
		}
	} else {
		_, _ = io.Copy(io.Discard, resp.Body)
	}
	return Result{Status: StatusPass, Latency: latency}, resp.StatusCode
}

func fail(res Result, format string, args ...any) Result {
	res.Status = StatusFail
	res.Note = fmt.Sprintf(format, args...)
	return res
}

func statusCase(name, method, url string, body any, want int) TestCase {
	return TestCase{
		Name:  name,
		Focus: "HTTP API",
		Run: func(ctx context.Context, r *Runner) Result {
			res, status := r.call(ctx, method, url, body, nil)
			if res.Status == StatusFail {
				return res
			}
			if status != want {
				return fail(res, "status=%d", status)
			}
			return res
		},
	}
}

// errorCase expects status and the exact error message shown to the user.
func errorCase(name, method, url string, body any, want int, message string) TestCase {
	return TestCase{
		Name:  name,
		Focus: "validation message",
		Run: func(ctx context.Context, r *Runner) Result {
			var out struct {
				Error string `json:"error"`
			}
			res, status := r.call(ctx, method, url, body, &out)
			if res.Status == StatusFail {
				return res
			}
			if status != want || out.Error != message {
				return fail(res, "status=%d error=%q", status, out.Error)
			}
			return res
		},
	}
}

func perfLoad(ctx context.Context, r *Runner, method, url string, payload any) Result {
	if r.cfg.Duration <= 0 {
		return Result{Status: StatusSkip, Note: "duration=0"}
	}
	var b []byte
	if payload != nil {
		b, _ = json.Marshal(payload)
	}
	end := time.Now().Add(r.cfg.Duration)
	var count, errCount, limited int64
	var mu sync.Mutex
	wg := sync.WaitGroup{}

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) && ctx.Err() == nil {
				var body io.Reader
				if b != nil {
					body = bytes.NewReader(b)
				}
				req, _ := http.NewRequestWithContext(ctx, method, url, body)
				req.Header.Set("Content-Type", "application/json")
				resp, err := r.httpc.Do(req)
				if err != nil {
					mu.Lock()
					errCount++
					mu.Unlock()
					continue
				}
				_, _ = io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				mu.Lock()
				count++
				if resp.StatusCode == http.StatusTooManyRequests {
					limited++
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if count == 0 {
		return Result{Status: StatusFail, Note: "no requests completed"}
	}
	rps := float64(count) / r.cfg.Duration.Seconds()
	return Result{Status: StatusPass, Note: fmt.Sprintf("rps=%.1f errors=%d limited=%d", rps, errCount, limited)}
}

func extractTables(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	re := regexp.MustCompile(`(?i)create\s+table\s+if\s+not\s+exists\s+([a-zA-Z0-9_]+)`)
	matches := re.FindAllStringSubmatch(string(b), -1)
	tables := make([]string, 0, len(matches))
	for _, m := range matches {
		tables = append(tables, m[1])
	}
	return tables, nil
}

func splitSQL(sql string) []string {
	lines := strings.Split(sql, "\n")
	filtered := make([]string, 0, len(lines))
	for _, line := range lines {
		l := strings.TrimSpace(line)
		if strings.HasPrefix(l, "--") || l == "" {
			continue
		}
		filtered = append(filtered, line)
	}
	parts := strings.Split(strings.Join(filtered, "\n"), ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
