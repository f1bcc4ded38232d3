// loadgen drives the order API with generated data. It reads the product
// catalog, then posts fake orders referencing random subsets of it. Useful
// for smoke-testing a running service.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

type product struct {
	ID int64 `json:"id"`
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func main() {
	gofakeit.Seed(time.Now().UnixNano())

	base := env("API_BASE", "http://localhost:8080")
	count := mustInt(env("GEN_COUNT", "10"))
	gap := mustInt(env("GEN_INTERVAL_MS", "0"))
	log.Printf("base=%s count=%d", base, count)

	client := &http.Client{Timeout: 10 * time.Second}

	products, err := fetchProducts(client, base)
	if err != nil {
		log.Fatalf("fetch products: %v", err)
	}
	if len(products) == 0 {
		log.Fatal("no products seeded; nothing to order")
	}

	created := 0
	for i := 0; i < count; i++ {
		if err := postOrder(client, base, products); err != nil {
			log.Printf("create order: %v", err)
			continue
		}
		created++
		if gap > 0 {
			time.Sleep(time.Duration(gap) * time.Millisecond)
		}
	}
	log.Printf("done: created=%d of %d", created, count)
}

func fetchProducts(client *http.Client, base string) ([]product, error) {
	resp, err := client.Get(base + "/api/orders/products/all")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("api error: %s", env.Message)
	}
	var products []product
	if err := json.Unmarshal(env.Data, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func postOrder(client *http.Client, base string, products []product) error {
	n := 1 + rand.Intn(len(products))
	perm := rand.Perm(len(products))
	ids := make([]int64, 0, n)
	for _, idx := range perm[:n] {
		ids = append(ids, products[idx].ID)
	}

	desc := gofakeit.ProductName() + " order for " + gofakeit.Company()
	if len(desc) > 100 {
		desc = desc[:100]
	}

	body, err := json.Marshal(map[string]any{
		"orderDescription": desc,
		"productIds":       ids,
	})
	if err != nil {
		return err
	}

	resp, err := client.Post(base+"/api/orders", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return err
	}
	if !env.Success {
		return fmt.Errorf("api error: %s", env.Message)
	}
	log.Printf("created order desc=%q products=%v", desc, ids)
	return nil
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
