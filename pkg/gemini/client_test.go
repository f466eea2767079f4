package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jivsocc/commandcenter/pkg/chat"
	"github.com/jivsocc/commandcenter/pkg/gemini"
	"github.com/jivsocc/commandcenter/pkg/logger"
)

func candidateBody(text, finishReason string) string {
	body := map[string]any{
		"candidates": []map[string]any{
			{
				"content": map[string]any{
					"parts": []map[string]any{{"text": text}},
				},
				"finishReason": finishReason,
			},
		},
	}
	raw, err := json.Marshal(body)
	Expect(err).NotTo(HaveOccurred())
	return string(raw)
}

var _ = Describe("Client", func() {
	var (
		server  *httptest.Server
		handler http.HandlerFunc
	)

	newClient := func() *gemini.Client {
		return gemini.NewClient("test-key",
			gemini.WithBaseURL(server.URL),
			gemini.WithModel("gemini-test"),
			gemini.WithLogger(logger.Nop()),
		)
	}

	turns := func() []gemini.Content {
		history := []chat.Message{{Role: chat.RoleUser, Content: "status?"}}
		return gemini.AssembleContents(history, "status?")
	}

	BeforeEach(func() {
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler(w, r)
		}))
	})

	AfterEach(func() {
		server.Close()
	})

	It("addresses the configured model and carries the key", func() {
		var gotPath, gotKey string
		handler = func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotKey = r.URL.Query().Get("key")
			w.Write([]byte(candidateBody("ok", "STOP")))
		}

		res := newClient().Generate(context.Background(), turns())
		Expect(res.Status).To(Equal(gemini.StatusOK))
		Expect(gotPath).To(Equal("/v1beta/models/gemini-test:generateContent"))
		Expect(gotKey).To(Equal("test-key"))
	})

	It("sends the fixed generation and safety settings", func() {
		var body map[string]any
		handler = func(w http.ResponseWriter, r *http.Request) {
			Expect(json.NewDecoder(r.Body).Decode(&body)).To(Succeed())
			w.Write([]byte(candidateBody("ok", "STOP")))
		}

		newClient().Generate(context.Background(), turns())

		cfg := body["generationConfig"].(map[string]any)
		Expect(cfg["temperature"]).To(BeNumerically("==", 0.5))
		Expect(cfg["topK"]).To(BeNumerically("==", 40))
		Expect(cfg["topP"]).To(BeNumerically("==", 0.9))
		Expect(cfg["maxOutputTokens"]).To(BeNumerically("==", 2048))

		settings := body["safetySettings"].([]any)
		Expect(settings).To(HaveLen(4))
		first := settings[0].(map[string]any)
		Expect(first["threshold"]).To(Equal("BLOCK_MEDIUM_AND_ABOVE"))
	})

	It("returns the candidate text on success", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(candidateBody("1,500 records failed in CUSTOMER_2.", "STOP")))
		}

		res := newClient().Generate(context.Background(), turns())
		Expect(res.Status).To(Equal(gemini.StatusOK))
		Expect(res.Text).To(Equal("1,500 records failed in CUSTOMER_2."))
	})

	It("reports a safety block", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[{"finishReason":"SAFETY"}]}`))
		}

		res := newClient().Generate(context.Background(), turns())
		Expect(res.Status).To(Equal(gemini.StatusSafetyBlocked))
	})

	It("falls back when the response carries no text", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[]}`))
		}

		res := newClient().Generate(context.Background(), turns())
		Expect(res.Status).To(Equal(gemini.StatusOK))
		Expect(res.Text).To(Equal(gemini.Fallback))
	})

	It("maps 429 to rate limited", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}

		res := newClient().Generate(context.Background(), turns())
		Expect(res.Status).To(Equal(gemini.StatusRateLimited))
	})

	It("maps 404 to not found", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}

		res := newClient().Generate(context.Background(), turns())
		Expect(res.Status).To(Equal(gemini.StatusNotFound))
	})

	It("carries other upstream statuses as provider errors", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}

		res := newClient().Generate(context.Background(), turns())
		Expect(res.Status).To(Equal(gemini.StatusProviderError))
		Expect(res.Code).To(Equal(http.StatusServiceUnavailable))
	})

	It("reports transport failures", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":`))
		}

		res := newClient().Generate(context.Background(), turns())
		Expect(res.Status).To(Equal(gemini.StatusTransportError))
		Expect(res.Err).To(HaveOccurred())
	})

	It("reports a dead upstream as a transport failure", func() {
		server.Close()
		res := newClient().Generate(context.Background(), turns())
		Expect(res.Status).To(Equal(gemini.StatusTransportError))
		Expect(res.Err).To(HaveOccurred())
	})
})
