package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderlust/backend/internal/models"
	"wanderlust/backend/internal/services"
)

// Fixed response bodies. Internal error detail is logged server-side and
// never leaks into a response.
const (
	MsgEnquirySubmitted   = "Enquiry submitted successfully."
	MsgNameEmailRequired  = "Name and email are required."
	MsgSomethingWentWrong = "Something went wrong. Please try again later."
)

// ContactEnquiryRequest is the accepted contact-form payload. Unrecognized
// fields in the request body are ignored silently; recognized fields pass
// through verbatim with no format validation.
type ContactEnquiryRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Mobile      string `json:"mobile"`
	Dates       string `json:"dates"`
	Travellers  string `json:"travellers"`
	Budget      string `json:"budget"`
	Destination string `json:"destination"`
	TripType    string `json:"tripType"`
	Notes       string `json:"notes"`
	Package     string `json:"package"`
	Nights      string `json:"nights"`
	SourcePage  string `json:"sourcePage"`
}

// RestContactHandler handles the contact enquiry and liveness endpoints.
type RestContactHandler struct {
	enquiryService      services.IEnquiryService
	notificationService services.INotificationService
	appName             string
}

// NewRestContactHandler creates a new RestContactHandler.
func NewRestContactHandler(enquiryService services.IEnquiryService, notificationService services.INotificationService, appName string) *RestContactHandler {
	return &RestContactHandler{
		enquiryService:      enquiryService,
		notificationService: notificationService,
		appName:             appName,
	}
}

// SubmitEnquiry handles POST /api/contact.
// Validation failures produce 400 with no side effects. After a successful
// insert, notification failure still reports 500 even though the document
// remains persisted; there is no rollback.
func (h *RestContactHandler) SubmitEnquiry(c *gin.Context) {
	var req ContactEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": MsgNameEmailRequired})
		return
	}

	if req.Name == "" || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": MsgNameEmailRequired})
		return
	}

	enquiry, err := h.enquiryService.CreateEnquiry(c.Request.Context(), &models.Enquiry{
		Name:        req.Name,
		Email:       req.Email,
		Mobile:      req.Mobile,
		Dates:       req.Dates,
		Travellers:  req.Travellers,
		Budget:      req.Budget,
		Destination: req.Destination,
		TripType:    req.TripType,
		Notes:       req.Notes,
		Package:     req.Package,
		Nights:      req.Nights,
		SourcePage:  req.SourcePage,
	})
	if err != nil {
		log.Printf("Error persisting contact enquiry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": MsgSomethingWentWrong})
		return
	}

	if err := h.notificationService.NotifyEnquiry(c.Request.Context(), enquiry); err != nil {
		log.Printf("Error sending notifications for enquiry %s: %v", enquiry.ID.Hex(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": MsgSomethingWentWrong})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": MsgEnquirySubmitted})
}

// Healthcheck handles GET /.
func (h *RestContactHandler) Healthcheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": fmt.Sprintf("%s backend is running.", h.appName),
	})
}
