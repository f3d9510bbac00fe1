package localstore_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrianlim/onboarding-tracker/pkg/localstore"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestLocalStore(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "LocalStore Suite")
}

var _ = Describe("Store", func() {
	var path string

	BeforeEach(func() {
		path = filepath.Join(GinkgoT().TempDir(), "onboarding.json")
	})

	Describe("Open", func() {
		It("should create an empty document when the file does not exist", func() {
			store, err := localstore.Open(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(path).To(BeAnExistingFile())

			err = store.View(func(doc *localstore.Document) error {
				Expect(doc.Employees).To(BeEmpty())
				Expect(doc.Tasks).To(BeEmpty())
				Expect(doc.Accounts).To(BeEmpty())
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should reuse an existing document", func() {
			store, err := localstore.Open(path)
			Expect(err).NotTo(HaveOccurred())
			err = store.Mutate(func(doc *localstore.Document) error {
				doc.Employees = append(doc.Employees, localstore.EmployeeRecord{ID: "e1", Name: "Sarah"})
				return nil
			})
			Expect(err).NotTo(HaveOccurred())

			reopened, err := localstore.Open(path)
			Expect(err).NotTo(HaveOccurred())
			err = reopened.View(func(doc *localstore.Document) error {
				Expect(doc.Employees).To(HaveLen(1))
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("Mutate", func() {
		It("should persist changes across loads", func() {
			store, err := localstore.Open(path)
			Expect(err).NotTo(HaveOccurred())

			err = store.Mutate(func(doc *localstore.Document) error {
				doc.Tasks = append(doc.Tasks, localstore.TaskRecord{
					ID:         "t1",
					EmployeeID: "e1",
					Name:       "Complete HR Documentation",
					Status:     "pending",
					Rank:       1,
					CreatedAt:  time.Now().UTC(),
				})
				return nil
			})
			Expect(err).NotTo(HaveOccurred())

			err = store.View(func(doc *localstore.Document) error {
				Expect(doc.Tasks).To(HaveLen(1))
				Expect(doc.Tasks[0].Name).To(Equal("Complete HR Documentation"))
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should leave the file untouched when fn fails", func() {
			store, err := localstore.Open(path)
			Expect(err).NotTo(HaveOccurred())

			err = store.Mutate(func(doc *localstore.Document) error {
				doc.Employees = append(doc.Employees, localstore.EmployeeRecord{ID: "e1"})
				return errors.New("validation failed")
			})
			Expect(err).To(HaveOccurred())

			err = store.View(func(doc *localstore.Document) error {
				Expect(doc.Employees).To(BeEmpty())
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("Ping", func() {
		It("should succeed on a healthy document", func() {
			store, err := localstore.Open(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(store.Ping()).To(Succeed())
		})

		It("should fail on a corrupted document", func() {
			store, err := localstore.Open(path)
			Expect(err).NotTo(HaveOccurred())

			Expect(os.WriteFile(path, []byte("{not json"), 0o644)).To(Succeed())
			Expect(store.Ping()).To(HaveOccurred())
		})
	})
})
