package main

import (
	"encoding/base64"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/openmed-ai/species-recognition/lib"
)

var router *gin.Engine
var ginContext *gin.Context

func TestServer(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Server Suite")
}

var _ = Describe("GetRecognisers", func() {

	var _ = Describe("Status codes", Ordered, func() {

		var _ = BeforeAll(func() {
			ginContext, router = gin.CreateTestContext(httptest.NewRecorder())

			router.GET("/statusCodeTests", server{}.GetRecognisers)

			go router.Run("localhost:9999")

			// wait for server to start
			time.Sleep(1 * time.Second)
		})

		var _ = It("Should be a bad request when no recognisers are specified", func() {
			res, err := http.Get("http://localhost:9999/statusCodeTests")

			Ω(err).Should(BeNil())
			Ω(res.StatusCode).Should(Equal(http.StatusBadRequest))
		})

		var _ = It("Should return status OK", func() {
			res, err := http.Get("http://localhost:9999/statusCodeTests?recogniser=species-detection")

			Ω(err).Should(BeNil())
			Ω(res.StatusCode).Should(Equal(http.StatusOK))
		})

		var _ = It("Should be a bad request when the options header is not base64", func() {
			req, err := http.NewRequest(http.MethodGet, "http://localhost:9999/statusCodeTests?recogniser=species-detection", nil)
			Ω(err).Should(BeNil())
			req.Header.Set("x-species-detection", "not base64!!")

			res, err := http.DefaultClient.Do(req)
			Ω(err).Should(BeNil())
			Ω(res.StatusCode).Should(Equal(http.StatusBadRequest))
		})
	})

	var _ = Describe("Batch route", Ordered, func() {

		var _ = BeforeAll(func() {
			_, router = gin.CreateTestContext(httptest.NewRecorder())

			router.POST("/batch", server{}.GetRecognisers, server{}.RecognizeBatch)

			go router.Run("localhost:9997")

			// wait for server to start
			time.Sleep(1 * time.Second)
		})

		var _ = It("Should be a bad request with more than one recogniser", func() {
			body := strings.NewReader(`{"texts":["Candida albicans isolated from specimen."]}`)
			res, err := http.Post("http://localhost:9997/batch?recogniser=one&recogniser=two", "application/json", body)

			Ω(err).Should(BeNil())
			Ω(res.StatusCode).Should(Equal(http.StatusBadRequest))

			raw, err := ioutil.ReadAll(res.Body)
			Ω(err).Should(BeNil())
			Ω(string(raw)).Should(ContainSubstring("single recogniser"))
		})
	})

	var _ = Describe("Adding recognisers to context", Ordered, func() {

		recogniser1 := "recogniser1"
		recogniser2 := "recogniser2"

		var _ = BeforeAll(func() {
			_, router = gin.CreateTestContext(httptest.NewRecorder())

			singleRecogniserAsserter := func(c *gin.Context) {
				receivedRecogniser, ok := c.Get(recognisersKey)
				Ω(ok).Should(Equal(true))

				recognisers, ok := receivedRecogniser.([]lib.RecogniserOptions)

				Ω(ok).Should(Equal(true))
				Ω(len(recognisers)).Should(Equal(1))
				Ω(recognisers[0].Name).Should(Equal(recogniser1))
			}

			multipleRecogniserAsserter := func(c *gin.Context) {
				receivedRecognisers, ok := c.Get(recognisersKey)
				Ω(ok).Should(Equal(true))

				recognisers, ok := receivedRecognisers.([]lib.RecogniserOptions)

				Ω(ok).Should(Equal(true))
				Ω(len(recognisers)).Should(Equal(2))
				Ω(recognisers[0].Name).Should(Equal(recogniser1))
				Ω(recognisers[1].Name).Should(Equal(recogniser2))
			}

			headerOptionsAsserter := func(c *gin.Context) {
				receivedRecogniser, ok := c.Get(recognisersKey)
				Ω(ok).Should(Equal(true))

				recognisers, ok := receivedRecogniser.([]lib.RecogniserOptions)

				Ω(ok).Should(Equal(true))
				Ω(len(recognisers)).Should(Equal(1))
				Ω(recognisers[0].Name).Should(Equal(recogniser1))
				Ω(recognisers[0].MaxWorkers).Should(Equal(3))
			}

			router.GET("/singleRecogniser", server{}.GetRecognisers, singleRecogniserAsserter)
			router.GET("/multipleRecogniser", server{}.GetRecognisers, multipleRecogniserAsserter)
			router.GET("/headerOptions", server{}.GetRecognisers, headerOptionsAsserter)
			go router.Run("localhost:9998")

			// wait for server to start
			time.Sleep(1 * time.Second)
		})

		var _ = It("Should add single recogniser to context", func() {
			res, err := http.Get(fmt.Sprintf("http://localhost:9998/singleRecogniser?%v=%v", "recogniser", recogniser1))
			Ω(err).Should(BeNil())
			Ω(res.StatusCode).Should(Equal(http.StatusOK))
		})

		var _ = It("Should add multiple recognisers to context", func() {
			res, err := http.Get(fmt.Sprintf("http://localhost:9998/multipleRecogniser?%v=%v&%v=%v", "recogniser", recogniser1, "recogniser", recogniser2))
			Ω(err).Should(BeNil())
			Ω(res.StatusCode).Should(Equal(http.StatusOK))
		})

		var _ = It("Should decode options from the recogniser header", func() {
			req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("http://localhost:9998/headerOptions?recogniser=%v", recogniser1), nil)
			Ω(err).Should(BeNil())
			req.Header.Set(fmt.Sprintf("x-%v", recogniser1), base64.StdEncoding.EncodeToString([]byte(`{"maxWorkers":3}`)))

			res, err := http.DefaultClient.Do(req)
			Ω(err).Should(BeNil())
			Ω(res.StatusCode).Should(Equal(http.StatusOK))
		})
	})
})
