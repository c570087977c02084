package service

import (
	"net/http"
	"strings"
	"testing"

	"membership/internal/core/model"
	"membership/internal/core/repository"
)

func validMemberInput() CreateMemberInput {
	return CreateMemberInput{
		FirstName:         "Amina",
		Surname:           "Bello",
		Gender:            "female",
		DateOfBirth:       "1985-04-12",
		MaritalStatus:     "married",
		EducationLevel:    "secondary",
		Phone:             "08031234567",
		Contact:           "12 Market Road, Ikeja",
		Location:          "Lagos",
		Ward:              "Ward 4",
		LGA:               "Ikeja",
		State:             "Lagos",
		FarmSize:          "2.5 hectares",
		FarmLocation:      "Epe",
		CropTypes:         "cassava, maize",
		YearsOfExperience: "12",
		Cooperative:       "Ikeja Farmers Co-op",
		NextOfKin:         "Tunde Bello",
		NextOfKinPhone:    "08087654321",
		EnrollmentDate:    "2023-06-01",
		PassportPhotos:    []string{"/uploads/1-abc.png"},
	}
}

func TestCreateMember(t *testing.T) {
	svc := NewMemberService(repository.NewInMemoryMemberRepository())

	member, err := svc.CreateMember(validMemberInput())
	if err != nil {
		t.Fatalf("CreateMember() error = %v", err)
	}
	if member.MembershipStatus != model.StatusPending {
		t.Errorf("status = %q, want %q", member.MembershipStatus, model.StatusPending)
	}
	if member.YearsOfExperience != 12 {
		t.Errorf("yearsOfExperience = %d, want 12", member.YearsOfExperience)
	}
	if member.DateOfBirth.Year() != 1985 {
		t.Errorf("dateOfBirth year = %d, want 1985", member.DateOfBirth.Year())
	}
	if member.EnrollmentDate.Month() != 6 {
		t.Errorf("enrollmentDate month = %d, want 6", member.EnrollmentDate.Month())
	}
	if len(member.PassportPhotos) != 1 {
		t.Errorf("got %d photos, want 1", len(member.PassportPhotos))
	}

	got, err := svc.GetMember(member.ID)
	if err != nil {
		t.Fatalf("GetMember() error = %v", err)
	}
	if got.FirstName != "Amina" {
		t.Errorf("firstName = %q", got.FirstName)
	}
}

func TestCreateMemberNoPhotos(t *testing.T) {
	svc := NewMemberService(repository.NewInMemoryMemberRepository())

	in := validMemberInput()
	in.PassportPhotos = nil
	member, err := svc.CreateMember(in)
	if err != nil {
		t.Fatalf("CreateMember() error = %v", err)
	}
	if member.PassportPhotos == nil {
		t.Error("passportPhotos is nil, want empty slice")
	}
}

func TestCreateMemberValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateMemberInput)
		wantMsg string
	}{
		{
			name:    "missing firstName",
			mutate:  func(in *CreateMemberInput) { in.FirstName = "" },
			wantMsg: "firstName",
		},
		{
			name:    "blank ward",
			mutate:  func(in *CreateMemberInput) { in.Ward = "   " },
			wantMsg: "ward",
		},
		{
			name:    "missing enrollmentDate",
			mutate:  func(in *CreateMemberInput) { in.EnrollmentDate = "" },
			wantMsg: "enrollmentDate",
		},
		{
			name:    "bad dateOfBirth",
			mutate:  func(in *CreateMemberInput) { in.DateOfBirth = "12/04/1985" },
			wantMsg: "dateOfBirth",
		},
		{
			name:    "non-numeric experience",
			mutate:  func(in *CreateMemberInput) { in.YearsOfExperience = "twelve" },
			wantMsg: "yearsOfExperience",
		},
		{
			name:    "negative experience",
			mutate:  func(in *CreateMemberInput) { in.YearsOfExperience = "-3" },
			wantMsg: "yearsOfExperience",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repository.NewInMemoryMemberRepository()
			svc := NewMemberService(repo)

			in := validMemberInput()
			tt.mutate(&in)
			_, err := svc.CreateMember(in)
			if err == nil {
				t.Fatal("CreateMember() error = nil, want validation error")
			}
			if status := errStatus(t, err); status != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", status)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not name field %q", err, tt.wantMsg)
			}

			members, err := repo.FindAll("")
			if err != nil {
				t.Fatalf("FindAll() error = %v", err)
			}
			if len(members) != 0 {
				t.Errorf("%d members persisted after failed create, want 0", len(members))
			}
		})
	}
}

func TestListMembersSearch(t *testing.T) {
	svc := NewMemberService(repository.NewInMemoryMemberRepository())

	lagos := validMemberInput()
	kano := validMemberInput()
	kano.FirstName = "Musa"
	kano.Surname = "Abubakar"
	kano.Location = "Kano"
	kano.Phone = "08099887766"
	kano.Contact = "5 Sabon Gari, Kano"

	if _, err := svc.CreateMember(lagos); err != nil {
		t.Fatalf("CreateMember() error = %v", err)
	}
	if _, err := svc.CreateMember(kano); err != nil {
		t.Fatalf("CreateMember() error = %v", err)
	}

	tests := []struct {
		name   string
		search string
		want   int
	}{
		{name: "no filter", search: "", want: 2},
		{name: "location case-insensitive", search: "LAGOS", want: 1},
		{name: "surname substring", search: "buba", want: 1},
		{name: "phone", search: "0803", want: 1},
		{name: "contact field", search: "sabon gari", want: 1},
		{name: "no match", search: "abuja", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			members, err := svc.ListMembers(tt.search)
			if err != nil {
				t.Fatalf("ListMembers() error = %v", err)
			}
			if len(members) != tt.want {
				t.Errorf("got %d members, want %d", len(members), tt.want)
			}
		})
	}
}

func TestGetMemberNotFound(t *testing.T) {
	svc := NewMemberService(repository.NewInMemoryMemberRepository())

	_, err := svc.GetMember("missing")
	if err == nil {
		t.Fatal("GetMember() error = nil, want not found")
	}
	if status := errStatus(t, err); status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
}
