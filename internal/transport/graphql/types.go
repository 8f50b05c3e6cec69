package graphql

import (
	"github.com/graphql-go/graphql"
)

// Default field resolution matches the json tags of the domain types.
var movieType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Movie",
	Fields: graphql.Fields{
		"id":       &graphql.Field{Type: graphql.String},
		"title":    &graphql.Field{Type: graphql.String},
		"director": &graphql.Field{Type: graphql.String},
		"rating":   &graphql.Field{Type: graphql.Float},
	},
})

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.String},
		"name":        &graphql.Field{Type: graphql.String},
		"is_admin":    &graphql.Field{Type: graphql.Boolean},
		"last_active": &graphql.Field{Type: graphql.Int},
	},
})

func requiredString() *graphql.ArgumentConfig {
	return &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)}
}

func stringArg(p graphql.ResolveParams, name string) string {
	value, _ := p.Args[name].(string)
	return value
}

func floatArg(p graphql.ResolveParams, name string) float64 {
	switch value := p.Args[name].(type) {
	case float64:
		return value
	case int:
		return float64(value)
	default:
		return 0
	}
}
