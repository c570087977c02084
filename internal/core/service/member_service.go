package service

import (
	"strconv"
	"strings"
	"time"

	"membership/internal/core/apperr"
	"membership/internal/core/model"
	"membership/internal/core/repository"
	"membership/internal/core/util"
)

const dateLayout = "2006-01-02"

// CreateMemberInput carries the registration form fields as submitted.
// Every field is required; dates and the experience count are coerced
// during validation.
type CreateMemberInput struct {
	FirstName         string
	Surname           string
	Gender            string
	DateOfBirth       string
	MaritalStatus     string
	EducationLevel    string
	Phone             string
	Contact           string
	Location          string
	Ward              string
	LGA               string
	State             string
	FarmSize          string
	FarmLocation      string
	CropTypes         string
	YearsOfExperience string
	Cooperative       string
	NextOfKin         string
	NextOfKinPhone    string
	EnrollmentDate    string
	PassportPhotos    []string
}

type MemberService interface {
	CreateMember(in CreateMemberInput) (*model.Member, error)
	GetMember(id string) (*model.Member, error)
	ListMembers(search string) ([]*model.Member, error)
}

type memberService struct {
	memberRepo repository.MemberRepository
}

func NewMemberService(memberRepo repository.MemberRepository) MemberService {
	return &memberService{
		memberRepo: memberRepo,
	}
}

func (s *memberService) CreateMember(in CreateMemberInput) (*model.Member, error) {
	required := []struct {
		name  string
		value string
	}{
		{"firstName", in.FirstName},
		{"surname", in.Surname},
		{"gender", in.Gender},
		{"dateOfBirth", in.DateOfBirth},
		{"maritalStatus", in.MaritalStatus},
		{"educationLevel", in.EducationLevel},
		{"phone", in.Phone},
		{"contact", in.Contact},
		{"location", in.Location},
		{"ward", in.Ward},
		{"lga", in.LGA},
		{"state", in.State},
		{"farmSize", in.FarmSize},
		{"farmLocation", in.FarmLocation},
		{"cropTypes", in.CropTypes},
		{"yearsOfExperience", in.YearsOfExperience},
		{"cooperative", in.Cooperative},
		{"nextOfKin", in.NextOfKin},
		{"nextOfKinPhone", in.NextOfKinPhone},
		{"enrollmentDate", in.EnrollmentDate},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return nil, apperr.Validation("%s is required", f.name)
		}
	}

	dateOfBirth, err := time.Parse(dateLayout, in.DateOfBirth)
	if err != nil {
		return nil, apperr.Validation("dateOfBirth must be in YYYY-MM-DD format")
	}
	enrollmentDate, err := time.Parse(dateLayout, in.EnrollmentDate)
	if err != nil {
		return nil, apperr.Validation("enrollmentDate must be in YYYY-MM-DD format")
	}
	experience, err := strconv.Atoi(strings.TrimSpace(in.YearsOfExperience))
	if err != nil || experience < 0 {
		return nil, apperr.Validation("yearsOfExperience must be a non-negative number")
	}

	member := &model.Member{
		ID:                util.GenerateID(),
		FirstName:         in.FirstName,
		Surname:           in.Surname,
		Gender:            in.Gender,
		DateOfBirth:       dateOfBirth,
		MaritalStatus:     in.MaritalStatus,
		EducationLevel:    in.EducationLevel,
		Phone:             in.Phone,
		Contact:           in.Contact,
		Location:          in.Location,
		Ward:              in.Ward,
		LGA:               in.LGA,
		State:             in.State,
		FarmSize:          in.FarmSize,
		FarmLocation:      in.FarmLocation,
		CropTypes:         in.CropTypes,
		YearsOfExperience: experience,
		Cooperative:       in.Cooperative,
		NextOfKin:         in.NextOfKin,
		NextOfKinPhone:    in.NextOfKinPhone,
		EnrollmentDate:    enrollmentDate,
		MembershipStatus:  model.StatusPending,
		PassportPhotos:    in.PassportPhotos,
		CreatedAt:         time.Now(),
	}
	if member.PassportPhotos == nil {
		member.PassportPhotos = []string{}
	}

	if err := s.memberRepo.Create(member); err != nil {
		return nil, apperr.Store(err)
	}
	return member, nil
}

func (s *memberService) GetMember(id string) (*model.Member, error) {
	member, err := s.memberRepo.FindByID(id)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if member == nil {
		return nil, apperr.NotFound("member not found")
	}
	return member, nil
}

func (s *memberService) ListMembers(search string) ([]*model.Member, error) {
	members, err := s.memberRepo.FindAll(search)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if members == nil {
		members = []*model.Member{}
	}
	return members, nil
}
