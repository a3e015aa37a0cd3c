// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"joinme/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rnd *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

var postTemplates = []struct {
	title    string
	category string
	price    string
}{
	{"Morning run around the park", "Sports", "Free"},
	{"Pickup basketball, need 2 more", "Sports", "Free"},
	{"Coffee and coworking", "Social", "Free"},
	{"Board game night", "Games", "Free"},
	{"Street food tour", "Food", "$15"},
	{"Sunset photography walk", "Outdoors", "Free"},
	{"Language exchange meetup", "Learning", "Free"},
	{"BBQ in the park", "Food", "$10"},
}

// jitter returns a coordinate offset within roughly the given kilometre
// range at mid latitudes.
func (f *Factory) jitter(maxKm float64) float64 {
	deg := maxKm / 111.0
	return (f.rnd.Float64()*2 - 1) * deg
}

// CreateUser constructs and persists a sample user placed near the given
// center. Optional override functions may modify the user before saving.
func (f *Factory) CreateUser(centerLat, centerLng float64, overrides ...func(*models.User)) (*models.User, error) {
	lat := centerLat + f.jitter(3)
	lng := centerLng + f.jitter(3)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		Email:      gofakeit.Email(),
		Name:       gofakeit.Name(),
		Password:   string(hashedPassword),
		Image:      fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		Bio:        gofakeit.Sentence(10),
		Profession: gofakeit.JobTitle(),
		Location:   gofakeit.City(),
		CurrentLat: &lat,
		CurrentLng: &lng,
		RadiusKm:   5,
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost persists a post authored by the user, pinned close to the
// author's own coordinates.
func (f *Factory) CreatePost(author *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	tpl := postTemplates[f.rnd.Intn(len(postTemplates))]

	lat, lng := 0.0, 0.0
	if author.HasLocation() {
		lat = *author.CurrentLat + f.jitter(0.5)
		lng = *author.CurrentLng + f.jitter(0.5)
	}

	post := &models.Post{
		AuthorID:  author.ID,
		Title:     tpl.title,
		Content:   gofakeit.Paragraph(1, 2, 8, " "),
		Price:     tpl.price,
		Category:  tpl.category,
		Latitude:  lat,
		Longitude: lng,
		Active:    true,
		CreatedAt: time.Now().Add(-time.Duration(f.rnd.Intn(72)) * time.Hour),
	}

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateFriendship links two users with the given status.
func (f *Factory) CreateFriendship(userID, friendID uint, status models.FriendshipStatus) (*models.Friendship, error) {
	friendship := &models.Friendship{
		UserID:   userID,
		FriendID: friendID,
		Status:   status,
	}
	if err := f.db.Create(friendship).Error; err != nil {
		return nil, err
	}
	return friendship, nil
}

// CreateMessage persists a text message between two users.
func (f *Factory) CreateMessage(senderID, receiverID uint) (*models.Message, error) {
	msg := &models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    gofakeit.Sentence(8),
		Type:       models.MessageTypeText,
		CreatedAt:  time.Now().Add(-time.Duration(f.rnd.Intn(48)) * time.Hour),
	}
	if err := f.db.Create(msg).Error; err != nil {
		return nil, err
	}
	return msg, nil
}

// CreateJoinRequest persists a pending join request.
func (f *Factory) CreateJoinRequest(postID, senderID uint) (*models.JoinRequest, error) {
	req := &models.JoinRequest{
		PostID:   postID,
		SenderID: senderID,
		Status:   models.JoinRequestStatusPending,
	}
	if err := f.db.Create(req).Error; err != nil {
		return nil, err
	}
	return req, nil
}
