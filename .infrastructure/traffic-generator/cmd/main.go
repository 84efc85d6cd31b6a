package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_generator_requests_total",
		Help: "Запросы генератора к grubdash по сценарию и коду ответа",
	}, []string{"scenario", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "traffic_generator_request_duration_seconds",
		Help:    "Длительность запросов генератора",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.3, 1},
	}, []string{"scenario"})
)

var statuses = []string{"pending", "preparing", "out-for-delivery"}

type client struct {
	baseURL string
	http    *http.Client
}

func (c *client) call(scenario, method, path string, body any) (map[string]any, error) {
	var reader io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(map[string]any{"data": body})
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	requestDuration.WithLabelValues(scenario).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(scenario, "error").Inc()
		return nil, err
	}
	defer resp.Body.Close()
	requestsTotal.WithLabelValues(scenario, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	var res map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("%s %s: %d %v", method, path, resp.StatusCode, res["message"])
	}
	return res, nil
}

func createdID(res map[string]any) string {
	data, _ := res["data"].(map[string]any)
	id, _ := data["id"].(string)
	return id
}

// orderFlow проходит полный жизненный цикл: блюдо, заказ, смена статуса, удаление.
func (c *client) orderFlow() error {
	dish, err := c.call("dish_create", http.MethodPost, "/dishes", map[string]any{
		"name":        "Dish " + strconv.Itoa(rand.IntN(1000)),
		"description": "generated",
		"price":       1 + rand.IntN(50),
		"image_url":   "https://example.com/dish.png",
	})
	if err != nil {
		return err
	}
	dishID := createdID(dish)

	if _, err := c.call("dish_list", http.MethodGet, "/dishes", nil); err != nil {
		return err
	}

	order := map[string]any{
		"deliverTo":    "Street " + strconv.Itoa(rand.IntN(100)),
		"mobileNumber": "555-" + strconv.Itoa(1000+rand.IntN(9000)),
		"status":       "pending",
		"dishes":       []map[string]any{{"id": dishID, "quantity": 1 + rand.IntN(3)}},
	}
	created, err := c.call("order_create", http.MethodPost, "/orders", order)
	if err != nil {
		return err
	}
	orderID := createdID(created)

	order["status"] = statuses[rand.IntN(len(statuses))]
	if _, err := c.call("order_update", http.MethodPut, "/orders/"+orderID, order); err != nil {
		return err
	}

	// удаляется только pending, остальные остаются в сторе для orders_total
	if order["status"] == "pending" {
		_, err = c.call("order_delete", http.MethodDelete, "/orders/"+orderID, nil)
	}
	return err
}

func main() {
	baseURL := os.Getenv("TARGET_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		server := &http.Server{Addr: ":2112", ReadHeaderTimeout: 5 * time.Second}
		if err := server.ListenAndServe(); err != nil {
			log.Printf("metrics server: %v", err)
		}
	}()

	c := &client{baseURL: baseURL, http: &http.Client{Timeout: 5 * time.Second}}
	for {
		if err := c.orderFlow(); err != nil {
			log.Printf("order flow: %v", err)
		}
		time.Sleep(time.Duration(500+rand.IntN(1500)) * time.Millisecond)
	}
}
