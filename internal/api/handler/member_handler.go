package handler

import (
	"net/http"

	"membership/internal/core/apperr"
	"membership/internal/core/service"
	"membership/internal/storage"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// memberFileFields maps the registration form's upload fields: passport
// photos collect into an ordered list and must be JPEG or PNG.
var memberFileFields = []storage.FileField{
	{Name: "passportPhotos", Slot: "passportPhotos", Types: storage.ImageTypes, Multi: true},
}

type MemberHandler struct {
	memberService service.MemberService
	uploads       *storage.LocalStore
	logger        *zap.Logger
}

func NewMemberHandler(memberService service.MemberService, uploads *storage.LocalStore, logger *zap.Logger) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
		uploads:       uploads,
		logger:        logger,
	}
}

func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	files, err := h.uploads.Intake(r, memberFileFields)
	if err != nil {
		writeError(w, h.logger, apperr.Validation("%s", err.Error()))
		return
	}

	in := service.CreateMemberInput{
		FirstName:         r.FormValue("firstName"),
		Surname:           r.FormValue("surname"),
		Gender:            r.FormValue("gender"),
		DateOfBirth:       r.FormValue("dateOfBirth"),
		MaritalStatus:     r.FormValue("maritalStatus"),
		EducationLevel:    r.FormValue("educationLevel"),
		Phone:             r.FormValue("phone"),
		Contact:           r.FormValue("contact"),
		Location:          r.FormValue("location"),
		Ward:              r.FormValue("ward"),
		LGA:               r.FormValue("lga"),
		State:             r.FormValue("state"),
		FarmSize:          r.FormValue("farmSize"),
		FarmLocation:      r.FormValue("farmLocation"),
		CropTypes:         r.FormValue("cropTypes"),
		YearsOfExperience: r.FormValue("yearsOfExperience"),
		Cooperative:       r.FormValue("cooperative"),
		NextOfKin:         r.FormValue("nextOfKin"),
		NextOfKinPhone:    r.FormValue("nextOfKinPhone"),
		EnrollmentDate:    r.FormValue("enrollmentDate"),
		PassportPhotos:    files["passportPhotos"],
	}

	member, err := h.memberService.CreateMember(in)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, member)
}

func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	members, err := h.memberService.ListMembers(search)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, members)
}

func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	member, err := h.memberService.GetMember(id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, member)
}
