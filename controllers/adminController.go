package controllers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/keianmejia/maribelle-api/catalog"
	"github.com/keianmejia/maribelle-api/initializers"
	"github.com/keianmejia/maribelle-api/middlewares"
	"github.com/keianmejia/maribelle-api/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionLifetime = 24 * time.Hour

	msgInvalidCredentials = "invalid email or password"
	msgFailedSession      = "failed to create session"
	defaultCategory       = "garments"
)

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func generateSessionToken(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"email":    user.Email,
		"fullname": user.Fullname,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(sessionLifetime).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// Login starts an admin session from a credential pair.
func Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var user models.User
	if err := initializers.DB.Where("email = ?", loginData.Email).First(&user).Error; err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	if err := comparePasswords(user.Password, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	tokenString, err := generateSessionToken(user)
	if err != nil {
		log.Println("Session token error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedSession)
		return
	}

	ctx.SetCookie(middlewares.SessionCookie, tokenString, int(sessionLifetime.Seconds()), "/", "", false, true)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"token": tokenString})
}

func Logout(ctx *gin.Context) {
	ctx.SetCookie(middlewares.SessionCookie, "", -1, "/", "", false, true)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Logged out"})
}

// GetSession answers the session lookup the admin panel gates itself on.
func GetSession(ctx *gin.Context) {
	claims := ctx.MustGet("session").(jwt.MapClaims)
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"email":    claims["email"],
		"fullname": claims["fullname"],
	})
}

// CreateProduct rejects an empty title before any remote call is made.
func CreateProduct(ctx *gin.Context) {
	var product models.NewProduct
	if err := ctx.ShouldBindJSON(&product); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	product.Title = strings.TrimSpace(product.Title)
	if product.Title == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, msgTitleRequired)
		return
	}
	if strings.TrimSpace(product.Category) == "" {
		product.Category = defaultCategory
	}

	id, err := Backend.CreateProduct(ctx.Request.Context(), product)
	if err != nil {
		log.Println("Product create error:", err)
		sendErrorResponse(ctx, http.StatusBadGateway, "Failed to create product")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"id": id})
}

// UpdateProduct patches arbitrary fields by id.
func UpdateProduct(ctx *gin.Context) {
	var fields map[string]any
	if err := ctx.ShouldBindJSON(&fields); err != nil || len(fields) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := Backend.UpdateProduct(ctx.Request.Context(), ctx.Param("id"), fields); err != nil {
		log.Println("Product update error:", err)
		sendErrorResponse(ctx, http.StatusBadGateway, "Failed to update product")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Product updated"})
}

// ToggleSoldOut reads the current flag and writes its negation.
func ToggleSoldOut(ctx *gin.Context) {
	id := ctx.Param("id")

	product, err := Catalog.GetProduct(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
			return
		}
		log.Println("Product lookup error:", err)
		sendErrorResponse(ctx, http.StatusBadGateway, msgFailedToLoadProducts)
		return
	}

	next := !product.IsSoldOut
	if err := Backend.UpdateProduct(ctx.Request.Context(), id, map[string]any{"is_sold_out": next}); err != nil {
		log.Println("Product update error:", err)
		sendErrorResponse(ctx, http.StatusBadGateway, "Failed to update product")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"id": id, "is_sold_out": next})
}

func DeleteProduct(ctx *gin.Context) {
	if err := Backend.DeleteProduct(ctx.Request.Context(), ctx.Param("id")); err != nil {
		log.Println("Product delete error:", err)
		sendErrorResponse(ctx, http.StatusBadGateway, "Failed to delete product")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Product deleted"})
}

// UploadProductImages accepts a multipart batch and hands it to the
// sequential uploader. Per-file failures are reported without aborting the
// batch.
func UploadProductImages(ctx *gin.Context) {
	if Images == nil {
		sendErrorResponse(ctx, http.StatusServiceUnavailable, msgUploadsNotConfigured)
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid form data")
		return
	}

	fileHeaders := form.File["images"]
	if len(fileHeaders) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "No files uploaded")
		return
	}

	files := make([]catalog.UploadFile, 0, len(fileHeaders))
	for _, header := range fileHeaders {
		files = append(files, catalog.UploadFile{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Open:        func() (io.ReadCloser, error) { return header.Open() },
		})
	}

	results := catalog.UploadProductImages(ctx.Request.Context(), Images, Backend, ctx.Param("id"), files)

	var uploadedUrls []string
	var failedUploads []string
	for _, result := range results {
		if result.Err != nil {
			log.Println("Image upload error:", result.Err)
			if result.URL == "" {
				failedUploads = append(failedUploads, result.Name)
				continue
			}
			// The object is stored even though its row insert failed; keep
			// the URL visible like any other partial success.
		}
		uploadedUrls = append(uploadedUrls, result.URL)
	}

	response := gin.H{
		"message": "Files processed",
		"urls":    uploadedUrls,
	}
	if len(failedUploads) > 0 {
		response["failed"] = failedUploads
	}

	sendJSONResponse(ctx, http.StatusOK, response)
}
