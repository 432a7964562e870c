package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"Feni2Backend/config/db"
	"Feni2Backend/config/jwt"
	"Feni2Backend/models"
	"Feni2Backend/util"
)

/*
* Pull email and password out of the request body.
* Email is matched case-insensitively, so store it lowercased.
 */
func validateCredentials(data map[string]interface{}) (string, string, error) {
	email, err := util.GetTrimmedString(data, "email")
	if err != nil {
		return "", "", errors.New(util.EMAIL_AND_PASSWORD_REQUIRED)
	}
	password, err := util.GetTrimmedString(data, "password")
	if err != nil {
		return "", "", errors.New(util.EMAIL_AND_PASSWORD_REQUIRED)
	}
	return strings.ToLower(email), password, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func adminResponse(id, email, role string) gin.H {
	return gin.H{
		"id":    id,
		"email": email,
		"role":  role,
	}
}

/*
* Validate input
* Reject an already registered email
* First registrant becomes admin, everyone after is member
* Hash, insert, sign a token
 */
func Register(ctx context.Context, data map[string]interface{}) (gin.H, error) {
	email, password, err := validateCredentials(data)
	if err != nil {
		return nil, err
	}

	collection := db.OpenCollection(util.AdminCollection)

	existing := make(map[string]interface{})
	err = db.FindOne(ctx, collection, bson.M{"email": email}, &existing)
	if err == nil {
		return nil, errors.New(util.USER_ALREADY_EXISTS)
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		log.Println("Error from findOne while checking email:", err)
		return nil, err
	}

	hashed, err := HashPassword(password)
	if err != nil {
		log.Println("Error from hashPassword:", err)
		return nil, err
	}

	count, err := db.Count(ctx, collection, nil)
	if err != nil {
		log.Println("Error from count while deciding role:", err)
		return nil, err
	}
	role := models.RoleMember
	if count == 0 {
		role = models.RoleAdmin
	}

	doc := bson.M{
		"email":     email,
		"password":  hashed,
		"role":      role,
		"createdAt": time.Now(),
	}
	inserted, err := db.CreateOne(ctx, collection, doc)
	if err != nil {
		if db.IsDuplicateKey(err) {
			return nil, errors.New(util.USER_ALREADY_EXISTS)
		}
		log.Println("Error from createOne while registering:", err)
		return nil, err
	}

	oid, ok := inserted.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, errors.New("unexpected inserted id type")
	}
	id := oid.Hex()

	token, err := jwt.GenerateJWT(id, email, role)
	if err != nil {
		log.Println("Error while generating the token:", err)
		return nil, err
	}

	return gin.H{
		"admin": adminResponse(id, email, role),
		"token": token,
	}, nil
}

/*
* Look the admin up by email, compare the bcrypt hash,
* stamp lastLogin and hand back a fresh token.
 */
func Login(ctx context.Context, data map[string]interface{}) (gin.H, error) {
	email, password, err := validateCredentials(data)
	if err != nil {
		return nil, err
	}

	collection := db.OpenCollection(util.AdminCollection)

	var admin models.Admin
	err = db.FindOne(ctx, collection, bson.M{"email": email}, &admin)
	if err != nil {
		return nil, errors.New(util.INVALID_CREDENTIALS)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, errors.New(util.INVALID_CREDENTIALS)
	}

	// lastLogin is informational, a failed stamp does not fail the login
	_, err = db.UpdateOne(ctx, collection,
		bson.M{"_id": admin.ID},
		bson.M{"$set": bson.M{"lastLogin": time.Now()}},
	)
	if err != nil {
		log.Println("Error while updating lastLogin:", err)
	}

	token, err := jwt.GenerateJWT(admin.ID.Hex(), admin.Email, admin.Role)
	if err != nil {
		log.Println("Error while generating the token:", err)
		return nil, err
	}

	return gin.H{
		"admin": adminResponse(admin.ID.Hex(), admin.Email, admin.Role),
		"token": token,
	}, nil
}
