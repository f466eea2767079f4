package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jivsocc/commandcenter/pkg/logger"
	"github.com/jivsocc/commandcenter/pkg/migration"
)

func getJSON(s *Server, path string) (int, map[string]any) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := s.app.Test(req, -1)
	Expect(err).NotTo(HaveOccurred())
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	Expect(err).NotTo(HaveOccurred())

	var body map[string]any
	Expect(json.Unmarshal(raw, &body)).To(Succeed())
	return resp.StatusCode, body
}

var _ = Describe("dashboard handlers", func() {
	var server *Server

	BeforeEach(func() {
		server = NewServer(Config{ListenAddr: ":0"}, nil, logger.Nop())
	})

	It("answers ping", func() {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		resp, err := server.app.Test(req, -1)
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()

		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		raw, err := io.ReadAll(resp.Body)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(raw)).To(Equal(`"pong"`))
	})

	It("serves the object inventory with its summary", func() {
		status, body := getJSON(server, "/api/objects")
		Expect(status).To(Equal(http.StatusOK))

		objects := body["objects"].([]any)
		Expect(objects).To(HaveLen(len(migration.Objects)))

		summary := body["summary"].(map[string]any)
		Expect(summary["objects"]).To(BeNumerically("==", len(migration.Objects)))
	})

	It("serves the pipeline with progress", func() {
		status, body := getJSON(server, "/api/pipeline")
		Expect(status).To(Equal(http.StatusOK))

		steps := body["steps"].([]any)
		Expect(steps).To(HaveLen(len(migration.Steps)))

		progress := body["progress"].(map[string]any)
		Expect(progress["steps"]).To(BeNumerically("==", len(migration.Steps)))
	})

	It("serves the dependency graph", func() {
		status, body := getJSON(server, "/api/graph")
		Expect(status).To(Equal(http.StatusOK))

		nodes := body["nodes"].([]any)
		Expect(nodes).To(HaveLen(len(migration.Objects)))
		Expect(body["edges"]).NotTo(BeNil())
	})

	It("serves reconciliation rows with summary and insights", func() {
		status, body := getJSON(server, "/api/reconciliation")
		Expect(status).To(Equal(http.StatusOK))

		rows := body["rows"].([]any)
		Expect(rows).To(HaveLen(len(migration.ReconRows)))

		summary := body["summary"].(map[string]any)
		Expect(summary["matchRate"]).To(BeNumerically(">", 0))

		Expect(body["rootCauses"]).NotTo(BeNil())
		Expect(body["insights"]).NotTo(BeNil())
	})

	It("serves test rules with their rollup", func() {
		status, body := getJSON(server, "/api/rules")
		Expect(status).To(Equal(http.StatusOK))

		rules := body["rules"].([]any)
		Expect(rules).To(HaveLen(len(migration.TestRules)))

		summary := body["summary"].(map[string]any)
		Expect(summary["rules"]).To(BeNumerically("==", len(migration.TestRules)))
	})

	It("serves the health scorecard", func() {
		status, body := getJSON(server, "/api/health")
		Expect(status).To(Equal(http.StatusOK))
		Expect(body["overallScore"]).To(BeNumerically("==", migration.HealthReport.OverallScore))
		Expect(body["trends"]).To(HaveLen(len(migration.HealthReport.Trends)))
	})
})
