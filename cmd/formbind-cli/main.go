package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-formbind/pkg/console"
	"github.com/goliatone/go-formbind/pkg/form"
	"github.com/goliatone/go-formbind/pkg/openapi"
	"github.com/goliatone/go-formbind/pkg/schema"
)

func main() {
	source := flag.String("schema", "fields.yaml", "field-definition document (JSON or YAML)")
	component := flag.String("component", "", "treat the document as OpenAPI and use this component schema")
	output := flag.String("output", "", "output file for collected values (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	fields, err := loadFields(ctx, *source, *component)
	if err != nil {
		log.Fatalf("Failed to load fields: %v", err)
	}

	f, err := form.NewBuilder().Build(fields)
	if err != nil {
		log.Fatalf("Failed to build form: %v", err)
	}
	f.UpdateView()

	session := console.NewSession()
	if err := session.Run(ctx, f); err != nil {
		log.Fatalf("Session failed: %v", err)
	}

	payload, err := json.MarshalIndent(f.State().Values(), "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode values: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Values written to %s\n", *output)
	} else {
		fmt.Println(string(payload))
	}
}

func loadFields(ctx context.Context, source, component string) ([]schema.Field, error) {
	if component == "" {
		return schema.LoadFile(source)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, err
	}
	return openapi.Fields(ctx, data, component)
}
