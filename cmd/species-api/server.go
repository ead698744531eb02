package main

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/openmed-ai/species-recognition/lib"
)

const recognisersKey = "recognisers"

type HttpError struct {
	code int
	error
}

func (e HttpError) Error() string {
	return e.error.Error()
}

func NewHttpError(code int, err error) HttpError {
	return HttpError{
		code:  code,
		error: err,
	}
}

type server struct {
	controller controller
}

func (s server) RegisterRoutes(r *gin.Engine) {
	r.POST("/entities", validateBody, s.GetRecognisers, s.Recognize)
	r.POST("/entities/batch", validateBody, s.GetRecognisers, s.RecognizeBatch)
	r.GET("/recognisers", s.ListRecognisers)
	r.GET("/health", s.Health)
}

func (s server) ListRecognisers(c *gin.Context) {
	c.JSON(200, s.controller.ListRecognisers())
}

// GetRecognisers resolves the recogniser query parameters into options,
// decoding any per-recogniser x-<name> header as base64 JSON.
func (s server) GetRecognisers(c *gin.Context) {

	var requestedRecognisers []string
	allRecognisersFlag, ok := c.GetQuery("allRecognisers")
	if ok && allRecognisersFlag == "true" {
		requestedRecognisers = s.controller.ListRecognisers()
	} else {
		requestedRecognisers, ok = c.GetQueryArray("recogniser")
		if !ok {
			handleError(c, NewHttpError(400, errors.New("you must set at least one recogniser query parameter")))
			return
		}
	}

	recognisers := make([]lib.RecogniserOptions, 0, len(requestedRecognisers))
	for _, name := range requestedRecognisers {
		opts := lib.RecogniserOptions{Name: name}

		header := c.GetHeader(fmt.Sprintf("x-%s", name))
		if header != "" {
			b, err := base64.StdEncoding.DecodeString(header)
			if err != nil {
				handleError(c, NewHttpError(400, errors.New("invalid request header - must be base64 encoded")))
				return
			}

			if err := json.Unmarshal(b, &opts); err != nil {
				handleError(c, NewHttpError(400, errors.New("invalid request header - must be valid json (base64 encoded)")))
				return
			}
			opts.Name = name
		}
		recognisers = append(recognisers, opts)
	}

	c.Set(recognisersKey, recognisers)
	c.Next()
}

func (s server) Recognize(c *gin.Context) {
	recognisers, ok := getRecogniserOptions(c)
	if !ok {
		return
	}

	entities, err := s.controller.Recognize(c.Request.Body, recognisers)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(200, entities)
}

func (s server) RecognizeBatch(c *gin.Context) {
	recognisers, ok := getRecogniserOptions(c)
	if !ok {
		return
	}
	if len(recognisers) > 1 {
		handleError(c, NewHttpError(400, errors.New("batch recognition accepts a single recogniser")))
		return
	}

	var body struct {
		Texts []string `json:"texts"`
	}
	if err := c.BindJSON(&body); err != nil {
		handleError(c, NewHttpError(400, errors.New("invalid request body - must be json with a texts array")))
		return
	}
	if len(body.Texts) == 0 {
		handleError(c, NewHttpError(400, errors.New("texts array must not be empty")))
		return
	}

	results, err := s.controller.RecognizeBatch(body.Texts, recognisers[0])
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(200, results)
}

func (s server) Health(c *gin.Context) {
	status, err := s.controller.Health(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(200, status)
}

func getRecogniserOptions(c *gin.Context) ([]lib.RecogniserOptions, bool) {
	r, ok := c.Get(recognisersKey)
	if !ok {
		handleError(c, errors.New("recognisers are unset"))
		return nil, false
	}

	recognisers, ok := r.([]lib.RecogniserOptions)
	if !ok || len(recognisers) == 0 {
		handleError(c, errors.New("recognisers are unset"))
		return nil, false
	}
	return recognisers, true
}

func validateBody(c *gin.Context) {
	if c.Request.Body == nil {
		handleError(c, NewHttpError(400, errors.New("request body missing")))
	} else if _, err := c.Request.Body.Read(nil); err == io.EOF {
		handleError(c, NewHttpError(400, errors.New("request body missing")))
	} else {
		c.Next()
	}
}

func handleError(c *gin.Context, err error) {
	if err == nil {
		abort(c, 500, errors.New("abort called on nil error"))
		return
	}
	switch e := err.(type) {
	case HttpError:
		abort(c, e.code, e.error)
	default:
		abort(c, 500, e)
	}
}

func abort(c *gin.Context, code int, err error) {
	switch {
	case code <= 500:
		c.JSON(code, map[string]interface{}{
			"status":  code,
			"message": err.Error(),
		})
		c.Abort()
	default:
		_ = c.AbortWithError(code, err)
	}
}
