package gemini_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jivsocc/commandcenter/pkg/chat"
	"github.com/jivsocc/commandcenter/pkg/gemini"
	"github.com/jivsocc/commandcenter/pkg/prompt"
)

var _ = Describe("AssembleContents", func() {
	It("prefixes the policy and acknowledgment turns", func() {
		history := []chat.Message{{Role: chat.RoleUser, Content: "status?"}}
		contents := gemini.AssembleContents(history, "status?")

		Expect(contents).To(HaveLen(3))
		Expect(contents[0].Role).To(Equal("user"))
		Expect(contents[0].Parts[0].Text).To(Equal(prompt.Policy))
		Expect(contents[1].Role).To(Equal("model"))
		Expect(contents[1].Parts[0].Text).To(Equal(prompt.Acknowledgment))
	})

	It("remaps assistant turns to the model role", func() {
		history := []chat.Message{
			{Role: chat.RoleUser, Content: "hi"},
			{Role: chat.RoleAssistant, Content: "hello"},
			{Role: chat.RoleUser, Content: "status?"},
		}
		contents := gemini.AssembleContents(history, "status?")

		Expect(contents).To(HaveLen(5))
		Expect(contents[2].Role).To(Equal("user"))
		Expect(contents[3].Role).To(Equal("model"))
		Expect(contents[3].Parts[0].Text).To(Equal("hello"))
		Expect(contents[4].Role).To(Equal("user"))
	})

	It("uses the pre-sanitized text for the final turn", func() {
		history := []chat.Message{{Role: chat.RoleUser, Content: "raw\x00input"}}
		contents := gemini.AssembleContents(history, "clean input")

		Expect(contents[2].Parts[0].Text).To(Equal("clean input"))
	})

	It("re-sanitizes every historical turn", func() {
		history := []chat.Message{
			{Role: chat.RoleUser, Content: "first\x00  question"},
			{Role: chat.RoleAssistant, Content: "an\x00swer   here"},
			{Role: chat.RoleUser, Content: "latest"},
		}
		contents := gemini.AssembleContents(history, "latest")

		Expect(contents[2].Parts[0].Text).To(Equal("first question"))
		Expect(contents[3].Parts[0].Text).To(Equal("answer here"))
	})

	It("handles an empty history", func() {
		contents := gemini.AssembleContents(nil, "unused")
		Expect(contents).To(HaveLen(2))
	})
})
