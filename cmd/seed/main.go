// Package main seeds the orders and accounts tables with demo rows for
// development environments. It writes straight to the store, so the rows
// carry seedId/seededAt markers that make them easy to find and purge.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/bagworks/backend/internal/config"
	"github.com/bagworks/backend/internal/kv"
	"github.com/bagworks/backend/internal/logging"
	"github.com/bagworks/backend/internal/numeric"
)

type dataset struct {
	Customers    []string `yaml:"customers"`
	Products     []string `yaml:"products"`
	Parties      []string `yaml:"parties"`
	PaymentModes []string `yaml:"paymentModes"`
}

func defaultDataset() dataset {
	names := []string{
		"Aarav Traders",
		"Mehta Industries",
		"Kumar Manufacturing",
		"Singh Engineering Works",
		"Sharma Metals",
		"Patel Supplies",
		"Rao Industrial Co.",
		"Verma Engineering",
		"Gupta Machinery",
		"Iyer Logistics",
	}
	return dataset{
		Customers: names,
		Parties:   names,
		Products: []string{
			"Shopping Bag", "Carry Bag", "Grocery Bag", "Rice Bag", "Courier Bag",
			"Gift Bag", "Printed Carry Bag", "Plain Carry Bag", "Loop Handle Bag", "D-Cut Bag",
		},
		PaymentModes: []string{"UPI", "NEFT", "RTGS", "Cash", "Card", "Cheque"},
	}
}

func loadDataset(path string) (dataset, error) {
	if path == "" {
		return defaultDataset(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return dataset{}, fmt.Errorf("read dataset: %w", err)
	}
	ds := defaultDataset()
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return dataset{}, fmt.Errorf("parse dataset: %w", err)
	}
	return ds, nil
}

func str(v string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: v}
}

func main() {
	datasetPath := flag.String("dataset", "", "optional YAML file overriding the seed name lists")
	count := flag.Int("count", 20, "rows to seed per table")
	flag.Parse()

	log := logging.New("seed")

	cfg, err := config.Load()
	if err != nil {
		log.Errorf("load config: %v", err)
		os.Exit(1)
	}
	ds, err := loadDataset(*datasetPath)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}

	ctx := context.Background()
	awscfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		log.Errorf("load aws config: %v", err)
		os.Exit(1)
	}
	client := dynamodb.NewFromConfig(awscfg)

	if err := seedOrders(ctx, kv.NewDynamo(client, cfg.OrdersTable), ds, *count); err != nil {
		log.Errorf("seed orders: %v", err)
		os.Exit(1)
	}
	log.Infof("seeded %d rows into %s", *count, cfg.OrdersTable)

	if err := seedAccounts(ctx, kv.NewDynamo(client, cfg.AccountsTable), ds, *count); err != nil {
		log.Errorf("seed accounts: %v", err)
		os.Exit(1)
	}
	log.Infof("seeded %d rows into %s", *count, cfg.AccountsTable)
}

func seedOrders(ctx context.Context, table kv.Table, ds dataset, count int) error {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC().Format(time.RFC3339)

	for i := 0; i < count; i++ {
		orderDate := start.AddDate(0, 0, i)
		deliveryDate := orderDate.AddDate(0, 0, 3+(i%10))

		item := kv.Item{
			"orderId":      str(fmt.Sprintf("ORD-%d", 1001+i)),
			"description":  str(fmt.Sprintf("%s - Batch #%d", ds.Products[i%len(ds.Products)], 500+(i%50))),
			"customerName": str(ds.Customers[i%len(ds.Customers)]),
			"orderDate":    str(orderDate.Format("2006-01-02")),
			"deliveryDate": str(deliveryDate.Format("2006-01-02")),
			"seedId":       str(uuid.NewString()),
			"seededAt":     str(now),
		}
		if err := table.Put(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func seedAccounts(ctx context.Context, table kv.Table, ds dataset, count int) error {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC().Format(time.RFC3339)
	kinds := []string{"incoming", "outgoing"}

	for i := 0; i < count; i++ {
		txnDate := start.AddDate(0, 0, i)
		kind := kinds[i%len(kinds)]
		mode := ds.PaymentModes[i%len(ds.PaymentModes)]
		party := ds.Parties[i%len(ds.Parties)]

		amount := float64(1500 + i*175)
		if kind == "outgoing" {
			amount = -amount
		}

		item := kv.Item{
			"txnId":       str(fmt.Sprintf("TXN-%d", 3001+i)),
			"partyName":   str(party),
			"type":        str(kind),
			"amount":      numeric.EncodeFloat(amount),
			"paymentMode": str(mode),
			"date":        str(txnDate.Format("2006-01-02")),
			"description": str(fmt.Sprintf("%s transaction for %s via %s", kind, party, mode)),
			"seedId":      str(uuid.NewString()),
			"seededAt":    str(now),
		}
		if err := table.Put(ctx, item); err != nil {
			return err
		}
	}
	return nil
}
