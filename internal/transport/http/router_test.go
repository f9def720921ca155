package httptransport

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"people-registry/internal/person"
	personmetrics "people-registry/internal/person/metrics"
	"people-registry/internal/person/models"
	personservice "people-registry/internal/person/service"
	"people-registry/internal/platform/metrics"
	"people-registry/pkg/testutil"
)

type createPayload struct {
	Name      string   `json:"nome"`
	Nick      string   `json:"apelido"`
	Birthdate string   `json:"nascimento"`
	Stack     []string `json:"stack,omitempty"`
}

func newTestServer(t *testing.T) (http.Handler, *person.Registry) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()

	registry := person.NewRegistry()
	personMetrics := personmetrics.NewWithRegisterer(reg)
	svc := person.NewService(registry,
		personservice.WithLogger(logger),
		personservice.WithMetrics(personMetrics),
	)

	router := NewRouter(Deps{
		Logger:   logger,
		Metrics:  metrics.NewWithRegisterer(reg),
		Gatherer: reg,
		Modules:  []RouteRegistrar{person.NewHandler(svc, logger, personMetrics)},
	})
	return router, registry
}

func TestPersonRegistryScenarios(t *testing.T) {
	testutil.Given(t, "an empty registry", func(t *testing.T) {
		router, _ := newTestServer(t)

		testutil.When(t, "Ada Lovelace is created", func(t *testing.T) {
			rec := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/pessoas", createPayload{
				Name: "Ada Lovelace", Nick: "Ada", Birthdate: "1815-12-10", Stack: []string{"Math"},
			}))
			require.Equal(t, http.StatusCreated, rec.Code)
			created := testutil.Decode[models.Person](t, rec)

			testutil.Then(t, "the record has a fresh id and unchanged fields", func(t *testing.T) {
				assert.False(t, created.ID.IsNil())
				assert.Equal(t, "Ada Lovelace", created.Name)
				assert.Equal(t, "Ada", created.Nick)
				assert.Equal(t, "1815-12-10", created.Birthdate.String())
				assert.Equal(t, []string{"Math"}, created.Stack)
			})

			testutil.Then(t, "a lookup returns the identical record", func(t *testing.T) {
				rec := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/pessoas/"+created.ID.String(), nil))
				require.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, created, testutil.Decode[models.Person](t, rec))
			})

			testutil.Then(t, "the count is 1", func(t *testing.T) {
				rec := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/contagem-pessoas", nil))
				require.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, 1, testutil.Decode[int](t, rec))
			})
		})
	})

	testutil.Given(t, "a registry with one person", func(t *testing.T) {
		router, registry := newTestServer(t)
		rec := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/pessoas", createPayload{
			Name: "Grace Hopper", Nick: "Grace", Birthdate: "1906-12-09",
		}))
		require.Equal(t, http.StatusCreated, rec.Code)

		testutil.When(t, "a 101 character name is submitted", func(t *testing.T) {
			rec := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/pessoas", createPayload{
				Name: strings.Repeat("n", 101), Nick: "x", Birthdate: "2000-01-01",
			}))

			testutil.Then(t, "it is rejected and the count is unchanged", func(t *testing.T) {
				testutil.AssertStatusAndError(t, rec, http.StatusUnprocessableEntity, "validation_error")
				assert.Equal(t, 1, registry.Count(t.Context()))
			})
		})

		testutil.When(t, "two persons are created concurrently", func(t *testing.T) {
			var wg sync.WaitGroup
			codes := make([]int, 2)
			for i := range 2 {
				wg.Go(func() {
					rec := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/pessoas", createPayload{
						Name: fmt.Sprintf("Concurrent %d", i), Nick: fmt.Sprintf("c%d", i), Birthdate: "2000-01-01",
					}))
					codes[i] = rec.Code
				})
			}
			wg.Wait()

			testutil.Then(t, "both succeed and both are listed", func(t *testing.T) {
				assert.Equal(t, []int{http.StatusCreated, http.StatusCreated}, codes)

				rec := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/pessoas", nil))
				require.Equal(t, http.StatusOK, rec.Code)
				listed := testutil.Decode[[]models.Person](t, rec)
				assert.Len(t, listed, 3)

				names := map[string]bool{}
				for _, p := range listed {
					names[p.Name] = true
				}
				assert.True(t, names["Concurrent 0"])
				assert.True(t, names["Concurrent 1"])
			})
		})
	})
}

func TestConcurrentCreatesThroughHTTP(t *testing.T) {
	router, registry := newTestServer(t)
	const n = 200

	var wg sync.WaitGroup
	ids := make(chan string, n)
	for i := range n {
		wg.Go(func() {
			rec := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/pessoas", createPayload{
				Name: fmt.Sprintf("Person %d", i), Nick: fmt.Sprintf("p%d", i), Birthdate: "1990-05-05",
			}))
			if assert.Equal(t, http.StatusCreated, rec.Code) {
				ids <- testutil.Decode[models.Person](t, rec).ID.String()
			}
		})
	}
	wg.Wait()
	close(ids)

	distinct := map[string]struct{}{}
	for personID := range ids {
		distinct[personID] = struct{}{}
	}
	assert.Len(t, distinct, n)
	assert.Equal(t, n, registry.Count(t.Context()))
}

func TestOperationalEndpoints(t *testing.T) {
	router, _ := newTestServer(t)

	t.Run("health", func(t *testing.T) {
		rec := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("metrics exposes registry counters", func(t *testing.T) {
		testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/pessoas", createPayload{
			Name: "a", Nick: "b", Birthdate: "2000-01-01",
		}))
		rec := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "people_registry_persons_created_total 1")
		assert.Contains(t, rec.Body.String(), `people_registry_http_requests_total{method="POST",route="/pessoas",status="201"} 1`)
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/nope", nil))
		testutil.AssertStatusAndError(t, rec, http.StatusNotFound, "not_found")
	})

	t.Run("wrong method", func(t *testing.T) {
		rec := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodDelete, "/pessoas", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("request id is echoed", func(t *testing.T) {
		rec := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/contagem-pessoas", nil))
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})
}
