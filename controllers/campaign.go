package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"Feni2Backend/config/authorization"
	"Feni2Backend/config/cloudinary"
	"Feni2Backend/models"
	"Feni2Backend/services"
	"Feni2Backend/util"
)

const (
	maxCampaignImages = 10
	maxImageSize      = 10 << 20 // 10MB per file
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

func Campaign(router *gin.RouterGroup) {
	campaigns := router.Group("/campaigns")
	{
		// public
		campaigns.GET("/active", GetActiveCampaigns)
		campaigns.GET("/stats", GetCampaignStats)
		campaigns.GET("/", GetAllCampaigns)
		campaigns.GET("/:id", GetCampaignByID)

		// management
		protected := campaigns.Group("", authorization.JWTAuth())
		{
			protected.POST("/create", CreateCampaign)
			protected.PATCH("/:id", UpdateCampaign)
			protected.PATCH("/:id/status", UpdateCampaignStatus)
			protected.POST("/:id/images", AddCampaignImages)
			protected.DELETE("/:id/images/:publicId", RemoveCampaignImage)
			protected.DELETE("/:id", authorization.AdminOnly(), DeleteCampaign)
		}
	}
}

/*
* Pull the uploaded files out of the multipart form, enforce the count,
* size and mime limits, and push each to the media host. Order follows
* upload order.
 */
func uploadImagesFromForm(c *gin.Context) ([]models.CampaignImage, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return []models.CampaignImage{}, nil
	}

	files := form.File["images"]
	if len(files) > maxCampaignImages {
		return nil, errors.New(util.TOO_MANY_IMAGES)
	}

	images := []models.CampaignImage{}
	for i, header := range files {
		if header.Size > maxImageSize {
			return nil, errors.New(util.IMAGE_TOO_LARGE)
		}
		if !allowedImageTypes[header.Header.Get("Content-Type")] {
			return nil, errors.New(util.IMAGE_TYPE_NOT_ALLOWED)
		}

		file, err := header.Open()
		if err != nil {
			return nil, err
		}
		data, err := cloudinary.UploadImage(c, file)
		file.Close()
		if err != nil {
			return nil, err
		}

		images = append(images, models.CampaignImage{
			URL:      data.URL,
			PublicID: data.PublicID,
			Order:    i,
		})
	}
	return images, nil
}

// formData copies the posted form values into the loose map the services
// consume, skipping fields the caller left out.
func formData(c *gin.Context, fields ...string) map[string]interface{} {
	data := make(map[string]interface{})
	for _, field := range fields {
		if v := c.PostForm(field); v != "" {
			data[field] = v
		}
	}
	return data
}

var campaignFields = []string{
	"title", "description", "category", "type",
	"startDate", "endDate", "location", "volunteerLimit", "priority",
}

func CreateCampaign(c *gin.Context) {
	images, err := uploadImagesFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err.Error()))
		return
	}

	data := formData(c, campaignFields...)
	result, err := services.CreateCampaign(c, data, images, c.GetString("adminId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(util.CAMPAIGN_CREATED, result))
}

func GetAllCampaigns(c *gin.Context) {
	status := c.Query("status")
	campaignType := c.Query("type")

	result, message, err := services.GetAllCampaigns(c, status, campaignType)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(message, result))
}

func GetActiveCampaigns(c *gin.Context) {
	result, err := services.GetActiveCampaigns(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.ACTIVE_CAMPAIGNS, result))
}

func GetCampaignByID(c *gin.Context) {
	result, err := services.GetCampaignByID(c, c.Param("id"))
	if err != nil {
		c.JSON(statusFromError(err), util.FailedResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.CAMPAIGN_FOUND, result))
}

/*
* Accepts either multipart (fields plus replacement images) or plain
* JSON when no new images are sent.
 */
func UpdateCampaign(c *gin.Context) {
	var data map[string]interface{}
	var images []models.CampaignImage

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		uploaded, err := uploadImagesFromForm(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err.Error()))
			return
		}
		images = uploaded
		data = formData(c, campaignFields...)
	} else {
		if err := c.BindJSON(&data); err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err.Error()))
			return
		}
	}

	result, err := services.UpdateCampaign(c, c.Param("id"), data, images)
	if err != nil {
		c.JSON(statusFromError(err), util.FailedResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.CAMPAIGN_UPDATED, result))
}

func UpdateCampaignStatus(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.CAMPAIGN_STATUS_REQUIRED))
		return
	}

	status, ok := data["status"].(string)
	if !ok || status == "" {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.CAMPAIGN_STATUS_REQUIRED))
		return
	}

	result, err := services.UpdateCampaignStatus(c, c.Param("id"), status)
	if err != nil {
		c.JSON(statusFromError(err), util.FailedResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.CAMPAIGN_STATUS_UPDATED, result))
}

func DeleteCampaign(c *gin.Context) {
	if err := services.DeleteCampaign(c, c.Param("id")); err != nil {
		c.JSON(statusFromError(err), util.FailedResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.CAMPAIGN_DELETED, nil))
}

func GetCampaignStats(c *gin.Context) {
	result, err := services.GetCampaignStats(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.CAMPAIGN_STATS, result))
}

func AddCampaignImages(c *gin.Context) {
	images, err := uploadImagesFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err.Error()))
		return
	}
	if len(images) == 0 {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.IMAGES_REQUIRED))
		return
	}

	result, err := services.AddImages(c, c.Param("id"), images)
	if err != nil {
		c.JSON(statusFromError(err), util.FailedResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.IMAGES_ADDED, result))
}

func RemoveCampaignImage(c *gin.Context) {
	result, err := services.RemoveImage(c, c.Param("id"), c.Param("publicId"))
	if err != nil {
		c.JSON(statusFromError(err), util.FailedResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.IMAGE_REMOVED, result))
}
