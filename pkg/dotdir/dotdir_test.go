package dotdir_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jivsocc/commandcenter/pkg/dotdir"
)

func TestDotdir(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Dotdir Suite")
}

var _ = Describe("Manager", func() {
	var (
		mgr *dotdir.Manager
		dir string
	)

	BeforeEach(func() {
		mgr = dotdir.NewManager()
		dir = GinkgoT().TempDir()
	})

	Describe("Target", func() {
		It("uses the override directory when provided", func() {
			target, err := mgr.Target(dir)
			Expect(err).NotTo(HaveOccurred())
			Expect(target).To(Equal(dir))
		})

		It("creates the override directory if missing", func() {
			nested := filepath.Join(dir, "deep", "occ")
			target, err := mgr.Target(nested)
			Expect(err).NotTo(HaveOccurred())

			info, err := os.Stat(target)
			Expect(err).NotTo(HaveOccurred())
			Expect(info.IsDir()).To(BeTrue())
		})
	})

	Describe("session state", func() {
		It("returns nil when no session exists", func() {
			state, err := mgr.LoadSessionState(dir)
			Expect(err).NotTo(HaveOccurred())
			Expect(state).To(BeNil())
		})

		It("round-trips a session", func() {
			state := &dotdir.SessionState{
				Messages: []dotdir.SessionMessage{
					{Role: "user", Content: "which objects failed?"},
					{Role: "assistant", Content: "CUSTOMER_2 and MATERIAL_DOC."},
				},
			}
			Expect(mgr.SaveSession(state, dir)).To(Succeed())

			loaded, err := mgr.LoadSessionState(dir)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Messages).To(HaveLen(2))
			Expect(loaded.Messages[0].Content).To(Equal("which objects failed?"))
		})

		It("rejects saving a nil session", func() {
			Expect(mgr.SaveSession(nil, dir)).To(MatchError(ContainSubstring("nil session")))
		})

		It("clears a session idempotently", func() {
			state := &dotdir.SessionState{
				Messages: []dotdir.SessionMessage{{Role: "user", Content: "hi"}},
			}
			Expect(mgr.SaveSession(state, dir)).To(Succeed())

			Expect(mgr.ClearSession(dir)).To(Succeed())
			Expect(mgr.ClearSession(dir)).To(Succeed())

			loaded, err := mgr.LoadSessionState(dir)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(BeNil())
		})

		It("errors on a corrupt session file", func() {
			Expect(os.WriteFile(filepath.Join(dir, "session.json"), []byte("{nope"), 0o600)).To(Succeed())
			_, err := mgr.LoadSessionState(dir)
			Expect(err).To(MatchError(ContainSubstring("parsing session state")))
		})
	})
})
