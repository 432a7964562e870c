package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"Feni2Backend/config/authorization"
	"Feni2Backend/services"
	"Feni2Backend/util"
)

func Notice(router *gin.RouterGroup) {
	notices := router.Group("/notices")
	{
		// public
		notices.GET("/", GetAllNotices)
		notices.GET("/today", GetTodayNotices)
		notices.GET("/upcoming", GetUpcomingNotices)
		notices.GET("/important", GetImportantNotices)
		notices.GET("/:id", GetNoticeByID)

		// management
		protected := notices.Group("", authorization.JWTAuth())
		{
			protected.POST("/create", CreateNotice)
			protected.PATCH("/:id", UpdateNotice)
			protected.DELETE("/:id", authorization.AdminOnly(), DeleteNotice)
		}
	}
}

func CreateNotice(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.NOTICE_FIELDS_REQUIRED))
		return
	}

	result, err := services.CreateNotice(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(util.NOTICE_CREATED, result))
}

func GetAllNotices(c *gin.Context) {
	result, err := services.GetAllNotices(c, c.Query("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.ALL_NOTICES, result))
}

func GetTodayNotices(c *gin.Context) {
	result, err := services.GetTodayNotices(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.TODAY_NOTICES, result))
}

func GetUpcomingNotices(c *gin.Context) {
	limit := int64(services.DefaultUpcomingLimit)
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			limit = parsed
		}
	}

	result, err := services.GetUpcomingNotices(c, limit)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.UPCOMING_NOTICES, result))
}

func GetImportantNotices(c *gin.Context) {
	result, err := services.GetImportantNotices(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.IMPORTANT_NOTICES, result))
}

func GetNoticeByID(c *gin.Context) {
	result, err := services.GetNoticeByID(c, c.Param("id"))
	if err != nil {
		c.JSON(statusFromError(err), util.FailedResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.NOTICE_FOUND, result))
}

func UpdateNotice(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err.Error()))
		return
	}

	result, err := services.UpdateNotice(c, c.Param("id"), data)
	if err != nil {
		c.JSON(statusFromError(err), util.FailedResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.NOTICE_UPDATED, result))
}

func DeleteNotice(c *gin.Context) {
	if err := services.DeleteNotice(c, c.Param("id")); err != nil {
		c.JSON(statusFromError(err), util.FailedResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.NOTICE_DELETED, nil))
}
