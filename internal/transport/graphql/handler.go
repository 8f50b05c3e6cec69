package graphql

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
	"go.uber.org/zap"
)

// Request is the GraphQL over HTTP request body.
type Request struct {
	Query         string                 `json:"query" form:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName" form:"operationName"`
}

// Handler executes GraphQL requests against one schema.
type Handler struct {
	schema graphql.Schema
	logger *zap.Logger
}

func NewHandler(schema graphql.Schema, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{schema: schema, logger: logger}
}

// Serve answers POST with a JSON body and GET with query parameters. Resolver
// failures are reported in the errors array with status 200.
func (h *Handler) Serve(c *gin.Context) {
	req, err := h.parse(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResult(err.Error()))
		return
	}
	if req.Query == "" {
		c.JSON(http.StatusBadRequest, errorResult("Must provide query string."))
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.Request.Context(),
	})
	if result.HasErrors() {
		h.logger.Debug("graphql request returned errors",
			zap.String("operation", req.OperationName),
			zap.Int("errors", len(result.Errors)),
		)
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) parse(c *gin.Context) (Request, error) {
	var req Request
	if c.Request.Method == http.MethodGet {
		req.Query = c.Query("query")
		req.OperationName = c.Query("operationName")
		if raw := c.Query("variables"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
				return req, errors.New("variables must be a JSON object")
			}
		}
		return req, nil
	}

	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, errors.New("invalid request body")
	}
	return req, nil
}

func errorResult(message string) *graphql.Result {
	return &graphql.Result{Errors: []gqlerrors.FormattedError{{Message: message}}}
}
