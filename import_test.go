package bankroll

import (
	"strings"
	"testing"
)

func TestImportJSON(t *testing.T) {
	testCases := []struct {
		name    string
		doc     string
		path    string
		wantIDs []string
		wantErr bool
	}{
		{
			name:    "local storage dump",
			doc:     `{"bets_v1":"[{\"id\":\"b\",\"date\":\"2025-01-02\",\"odds\":1.5,\"stake\":20,\"result\":\"loss\"},{\"id\":\"a\",\"date\":\"2025-01-01\",\"odds\":2,\"stake\":10,\"result\":\"win\"}]","bankroll_initial_v1":"100"}`,
			wantIDs: []string{"b", "a"},
		},
		{
			name:    "nested array",
			doc:     `{"export":{"bets":[{"id":"a","date":"2025-01-01","odds":2,"stake":10,"result":"win"}]}}`,
			path:    "$.export.bets",
			wantIDs: []string{"a"},
		},
		{
			name:    "single bet",
			doc:     `{"bets":[{"id":"a","date":"2025-01-01","odds":2,"stake":10,"result":"win"},{"id":"b","date":"2025-01-02","odds":3,"stake":1,"result":"void"}]}`,
			path:    "$.bets[1]",
			wantIDs: []string{"b"},
		},
		{
			name:    "filtered bets",
			doc:     `{"bets":[{"id":"a","date":"2025-01-01","odds":2,"stake":10,"result":"win"},{"id":"b","date":"2025-01-02","odds":3,"stake":1,"result":"void"}]}`,
			path:    `$.bets[?(@.result=="void")]`,
			wantIDs: []string{"b"},
		},
		{
			name:    "missing path",
			doc:     `{"other":[]}`,
			wantErr: true,
		},
		{
			name:    "not json",
			doc:     `bets_v1=[]`,
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bets, err := ImportJSON(strings.NewReader(tc.doc), tc.path)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ImportJSON() error = %v, wantErr %v", err, tc.wantErr)
			}
			var got []string
			for _, b := range bets {
				got = append(got, b.ID)
			}
			if strings.Join(got, ",") != strings.Join(tc.wantIDs, ",") {
				t.Errorf("ImportJSON() ids = %v, want %v", got, tc.wantIDs)
			}
		})
	}
}

func TestImportJSON_KeepsExactDecimals(t *testing.T) {
	doc := `{"bets_v1":[{"id":"a","date":"2025-01-01","odds":1.1,"stake":0.3,"result":"win"}]}`
	bets, err := ImportJSON(strings.NewReader(doc), "")
	if err != nil {
		t.Fatalf("ImportJSON() failed: %v", err)
	}
	if len(bets) != 1 {
		t.Fatalf("got %d bets", len(bets))
	}
	if got := bets[0].Profit().String(); got != "0.03" {
		t.Errorf("Profit() = %s, want 0.03", got)
	}
}
