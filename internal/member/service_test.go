package member_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/oleocontrol/oleocontrol/internal"
	memberDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/member"
	"github.com/oleocontrol/oleocontrol/internal/member"
)

func TestMember(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Member Suite")
}

type mockMemberRepository struct {
	members map[int64]*memberDatamodel.Member
	userIDs map[int64]bool
	nextID  int64
}

func newMockMemberRepository() *mockMemberRepository {
	return &mockMemberRepository{
		members: make(map[int64]*memberDatamodel.Member),
		userIDs: map[int64]bool{1: true, 2: true, 3: true},
		nextID:  1,
	}
}

func (m *mockMemberRepository) GetAll(limit, offset int) ([]*memberDatamodel.Member, error) {
	all := make([]*memberDatamodel.Member, 0, len(m.members))
	for _, mem := range m.members {
		all = append(all, mem)
	}
	return all, nil
}

func (m *mockMemberRepository) GetByID(id int64) (*memberDatamodel.Member, error) {
	mem, ok := m.members[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return mem, nil
}

func (m *mockMemberRepository) GetByUserID(userID int64) (*memberDatamodel.Member, error) {
	for _, mem := range m.members {
		if mem.UserID == userID {
			return mem, nil
		}
	}
	return nil, errors.New("record not found")
}

func (m *mockMemberRepository) Create(mem *memberDatamodel.Member) error {
	mem.ID = m.nextID
	m.nextID++
	m.members[mem.ID] = mem
	return nil
}

func (m *mockMemberRepository) Update(mem *memberDatamodel.Member) error {
	m.members[mem.ID] = mem
	return nil
}

func (m *mockMemberRepository) Delete(id int64) error {
	delete(m.members, id)
	return nil
}

func (m *mockMemberRepository) UserExists(userID int64) (bool, error) {
	return m.userIDs[userID], nil
}

func (m *mockMemberRepository) ExistsMemberNumber(number int, excludeID int64) (bool, error) {
	for _, mem := range m.members {
		if mem.MemberNumber == number && mem.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

var _ = Describe("MemberService", func() {
	var (
		repo    *mockMemberRepository
		service *member.Service
	)

	BeforeEach(func() {
		repo = newMockMemberRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = member.NewService(repo, logger)
	})

	Describe("Create", func() {
		It("registers a member", func() {
			resp, err := service.Create(member.CreateMemberDTO{UserID: 1, MemberNumber: 100})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.MemberNumber).To(Equal(100))
			Expect(resp.UserID).To(Equal(int64(1)))
		})

		It("rejects a duplicate member number", func() {
			_, err := service.Create(member.CreateMemberDTO{UserID: 1, MemberNumber: 100})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Create(member.CreateMemberDTO{UserID: 2, MemberNumber: 100})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Fields).To(HaveKey("member_number"))
			Expect(appErr.Fields["member_number"]).To(ContainSubstring("ya está en uso"))
		})

		It("rejects a user who is already a member", func() {
			_, err := service.Create(member.CreateMemberDTO{UserID: 1, MemberNumber: 100})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Create(member.CreateMemberDTO{UserID: 1, MemberNumber: 101})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Fields).To(HaveKey("user_id"))
			Expect(appErr.Fields["user_id"]).To(ContainSubstring("ya es socio"))
		})

		It("rejects an unknown user", func() {
			_, err := service.Create(member.CreateMemberDTO{UserID: 99, MemberNumber: 100})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Fields).To(HaveKey("user_id"))
		})

		It("rejects a non-positive member number", func() {
			_, err := service.Create(member.CreateMemberDTO{UserID: 1, MemberNumber: 0})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Fields).To(HaveKey("member_number"))
		})
	})

	Describe("Update", func() {
		It("changes the member number", func() {
			created, err := service.Create(member.CreateMemberDTO{UserID: 1, MemberNumber: 100})
			Expect(err).NotTo(HaveOccurred())

			newNumber := 200
			resp, err := service.Update(created.ID, member.UpdateMemberDTO{MemberNumber: &newNumber})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.MemberNumber).To(Equal(200))
		})

		It("lets a member keep their own number", func() {
			created, err := service.Create(member.CreateMemberDTO{UserID: 1, MemberNumber: 100})
			Expect(err).NotTo(HaveOccurred())

			same := 100
			_, err = service.Update(created.ID, member.UpdateMemberDTO{MemberNumber: &same})
			Expect(err).NotTo(HaveOccurred())
		})

		It("rejects taking another member's number", func() {
			_, err := service.Create(member.CreateMemberDTO{UserID: 1, MemberNumber: 100})
			Expect(err).NotTo(HaveOccurred())
			second, err := service.Create(member.CreateMemberDTO{UserID: 2, MemberNumber: 200})
			Expect(err).NotTo(HaveOccurred())

			taken := 100
			_, err = service.Update(second.ID, member.UpdateMemberDTO{MemberNumber: &taken})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Fields).To(HaveKey("member_number"))
		})

		It("returns not found for unknown members", func() {
			number := 100
			_, err := service.Update(999, member.UpdateMemberDTO{MemberNumber: &number})
			Expect(err).To(Equal(internal.ErrMemberNotFound))
		})
	})

	Describe("Delete", func() {
		It("removes a member", func() {
			created, err := service.Create(member.CreateMemberDTO{UserID: 1, MemberNumber: 100})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.Delete(created.ID)).To(Succeed())
			_, err = service.Get(created.ID)
			Expect(err).To(Equal(internal.ErrMemberNotFound))
		})
	})
})
