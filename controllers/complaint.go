package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"Feni2Backend/config/authorization"
	"Feni2Backend/services"
	"Feni2Backend/util"
)

func Complaint(router *gin.RouterGroup) {
	complaints := router.Group("/complaints")
	{
		// public
		complaints.GET("/stats", GetComplaintStats)
		complaints.POST("/create", CreateComplaint)
		complaints.POST("/track", TrackComplaints)

		// admin
		complaints.GET("/", authorization.JWTAuth(), GetAllComplaints)
		complaints.PATCH("/:id/status", authorization.JWTAuth(), UpdateComplaintStatus)
		complaints.DELETE("/:id", authorization.JWTAuth(), authorization.AdminOnly(), DeleteComplaint)
		complaints.GET("/:id", authorization.JWTAuth(), GetComplaintByID)
	}
}

func CreateComplaint(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.COMPLAINT_FIELDS_REQUIRED))
		return
	}

	result, err := services.CreateComplaint(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(util.COMPLAINT_CREATED, result))
}

func TrackComplaints(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.COMPLAINT_PHONE_REQUIRED))
		return
	}

	phone, err := util.GetTrimmedString(data, "phone")
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.COMPLAINT_PHONE_REQUIRED))
		return
	}

	result, err := services.TrackComplaints(c, phone)
	if err != nil {
		c.JSON(statusFromError(err), util.FailedResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.COMPLAINTS_FOUND, result))
}

func GetAllComplaints(c *gin.Context) {
	result, err := services.GetAllComplaints(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.ALL_COMPLAINTS, result))
}

func GetComplaintByID(c *gin.Context) {
	result, err := services.GetComplaintByID(c, c.Param("id"))
	if err != nil {
		c.JSON(statusFromError(err), util.FailedResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.COMPLAINT_FOUND, result))
}

func UpdateComplaintStatus(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.COMPLAINT_STATUS_REQUIRED))
		return
	}

	status, ok := data["status"].(string)
	if !ok || status == "" {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.COMPLAINT_STATUS_REQUIRED))
		return
	}
	adminNote, _ := data["adminNote"].(string)

	result, err := services.UpdateComplaintStatus(c, c.Param("id"), status, adminNote)
	if err != nil {
		c.JSON(statusFromError(err), util.FailedResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.COMPLAINT_UPDATED, result))
}

func DeleteComplaint(c *gin.Context) {
	result, err := services.DeleteComplaint(c, c.Param("id"))
	if err != nil {
		c.JSON(statusFromError(err), util.FailedResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.COMPLAINT_DELETED, result))
}

func GetComplaintStats(c *gin.Context) {
	result, err := services.GetComplaintStats(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.COMPLAINT_STATS, result))
}
