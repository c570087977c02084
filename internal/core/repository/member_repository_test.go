package repository

import (
	"testing"
	"time"

	"membership/internal/core/model"

	"go.mongodb.org/mongo-driver/bson"
)

func TestMemberSearchFilterQuotesMetacharacters(t *testing.T) {
	tests := []struct {
		name        string
		search      string
		wantPattern string
	}{
		{name: "plain term", search: "lagos", wantPattern: "lagos"},
		{name: "phone with plus", search: "+234", wantPattern: `\+234`},
		{name: "lone dot", search: ".", wantPattern: `\.`},
		{name: "parenthesized", search: "(FCT)", wantPattern: `\(FCT\)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := memberSearchFilter(tt.search)
			clauses, ok := filter["$or"].([]bson.M)
			if !ok {
				t.Fatalf("filter = %v, want $or clauses", filter)
			}
			if len(clauses) != 5 {
				t.Fatalf("got %d clauses, want 5", len(clauses))
			}
			for _, clause := range clauses {
				for field, cond := range clause {
					pattern, ok := cond.(bson.M)
					if !ok {
						t.Fatalf("clause for %s = %v", field, cond)
					}
					if pattern["$regex"] != tt.wantPattern {
						t.Errorf("%s $regex = %v, want %q", field, pattern["$regex"], tt.wantPattern)
					}
					if pattern["$options"] != "i" {
						t.Errorf("%s $options = %v, want \"i\"", field, pattern["$options"])
					}
				}
			}
		})
	}
}

func TestMemberSearchFilterEmpty(t *testing.T) {
	if filter := memberSearchFilter(""); len(filter) != 0 {
		t.Errorf("filter = %v, want empty", filter)
	}
}

func TestInMemoryFindAllMatchesLiterally(t *testing.T) {
	repo := NewInMemoryMemberRepository()
	if err := repo.Create(&model.Member{
		ID:        "m1",
		FirstName: "Amina",
		Surname:   "Bello",
		Location:  "Lagos",
		Phone:     "+2348031234567",
		Contact:   "12 Market Road, Ikeja",
		CreatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	tests := []struct {
		name   string
		search string
		want   int
	}{
		{name: "literal plus prefix", search: "+234", want: 1},
		{name: "dot only matches a literal dot", search: ".", want: 0},
		{name: "regex any-run does not match", search: "a.*o", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			members, err := repo.FindAll(tt.search)
			if err != nil {
				t.Fatalf("FindAll() error = %v", err)
			}
			if len(members) != tt.want {
				t.Errorf("got %d members, want %d", len(members), tt.want)
			}
		})
	}
}
