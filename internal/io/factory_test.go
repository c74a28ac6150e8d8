package io

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewInputReader(t *testing.T) {
	testCases := []struct {
		name     string
		opts     SourceOptions
		wantType string
		wantErr  string
	}{
		{name: "csv", opts: SourceOptions{Format: "csv"}, wantType: "*io.CSVReader"},
		{name: "csv uppercase", opts: SourceOptions{Format: "CSV"}, wantType: "*io.CSVReader"},
		{name: "xlsx", opts: SourceOptions{Format: "xlsx", SheetName: "Taxes"}, wantType: "*io.XLSXReader"},
		{name: "json", opts: SourceOptions{Format: "json"}, wantType: "*io.JSONReader"},
		{name: "postgres", opts: SourceOptions{Format: "postgres", DBConnStr: "postgres://u:p@h/db", Query: "SELECT 1"}, wantType: "*io.PostgresReader"},
		{name: "postgres missing conn", opts: SourceOptions{Format: "postgres", Query: "SELECT 1"}, wantErr: "connection string"},
		{name: "postgres missing query", opts: SourceOptions{Format: "postgres", DBConnStr: "postgres://u:p@h/db"}, wantErr: "-query is required"},
		{name: "csv bad delimiter", opts: SourceOptions{Format: "csv", Delimiter: ",,"}, wantErr: "invalid delimiter"},
		{name: "unknown", opts: SourceOptions{Format: "parquet"}, wantErr: "unsupported source format"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reader, err := NewInputReader(tc.opts)
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("NewInputReader error = %v, want containing %q", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewInputReader: %v", err)
			}
			if got := fmt.Sprintf("%T", reader); got != tc.wantType {
				t.Errorf("reader type = %s, want %s", got, tc.wantType)
			}
		})
	}
}

func TestNewOutputWriter(t *testing.T) {
	testCases := []struct {
		name     string
		opts     DestOptions
		wantType string
		wantErr  string
	}{
		{name: "json", opts: DestOptions{Format: "json"}, wantType: "*io.JSONWriter"},
		{name: "csv", opts: DestOptions{Format: "csv"}, wantType: "*io.CSVWriter"},
		{name: "xlsx", opts: DestOptions{Format: "xlsx"}, wantType: "*io.XLSXWriter"},
		{name: "table", opts: DestOptions{Format: "table"}, wantType: "*io.TableWriter"},
		{name: "postgres", opts: DestOptions{Format: "postgres", DBConnStr: "postgres://u:p@h/db", Table: "taxes"}, wantType: "*io.PostgresWriter"},
		{name: "postgres missing conn", opts: DestOptions{Format: "postgres", Table: "taxes"}, wantErr: "connection string"},
		{name: "postgres missing table", opts: DestOptions{Format: "postgres", DBConnStr: "postgres://u:p@h/db"}, wantErr: "-table is required"},
		{name: "unknown", opts: DestOptions{Format: "yaml"}, wantErr: "unsupported destination format"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			writer, err := NewOutputWriter(tc.opts)
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("NewOutputWriter error = %v, want containing %q", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewOutputWriter: %v", err)
			}
			if got := fmt.Sprintf("%T", writer); got != tc.wantType {
				t.Errorf("writer type = %s, want %s", got, tc.wantType)
			}
		})
	}
}
