package seed

import (
	"fmt"
	"log"

	"joinme/internal/models"

	"gorm.io/gorm"
)

// Seeder populates the database with a believable local community: users
// clustered around a center point, their posts, friendships, conversations
// and join requests.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{
		db:      db,
		factory: NewFactory(db),
	}
}

// ClearAll truncates every domain table, dependents first.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	tables := []interface{}{
		&models.PushSubscription{},
		&models.Message{},
		&models.JoinRequest{},
		&models.Friendship{},
		&models.Post{},
		&models.User{},
	}
	for _, table := range tables {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(table).Error; err != nil {
			return fmt.Errorf("clearing %T: %w", table, err)
		}
	}
	return nil
}

// SeedCommunity creates numUsers users scattered around the given center
// with posts, a friendship mesh and some conversations.
func (s *Seeder) SeedCommunity(centerLat, centerLng float64, numUsers, numPosts int) error {
	log.Printf("Seeding %d users around (%.4f, %.4f)...", numUsers, centerLat, centerLng)

	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.factory.CreateUser(centerLat, centerLng)
		if err != nil {
			return fmt.Errorf("creating user: %w", err)
		}
		users = append(users, user)
	}
	if len(users) < 2 {
		return nil
	}

	log.Printf("Seeding %d posts...", numPosts)
	posts := make([]*models.Post, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		author := users[i%len(users)]
		post, err := s.factory.CreatePost(author)
		if err != nil {
			return fmt.Errorf("creating post: %w", err)
		}
		posts = append(posts, post)
	}

	// Friendship mesh: each user befriends a couple of neighbours in the
	// slice; every third pair stays pending.
	log.Println("Seeding friendships...")
	for i, u := range users {
		for _, offset := range []int{1, 2} {
			j := (i + offset) % len(users)
			if j == i {
				continue
			}
			status := models.FriendshipStatusAccepted
			if (i+offset)%3 == 0 {
				status = models.FriendshipStatusPending
			}
			if _, err := s.factory.CreateFriendship(u.ID, users[j].ID, status); err != nil {
				// Pair already linked from the other side; skip.
				continue
			}
		}
	}

	log.Println("Seeding conversations...")
	for i := 0; i+1 < len(users); i += 2 {
		a, b := users[i], users[i+1]
		for k := 0; k < 4; k++ {
			sender, receiver := a, b
			if k%2 == 1 {
				sender, receiver = b, a
			}
			if _, err := s.factory.CreateMessage(sender.ID, receiver.ID); err != nil {
				return fmt.Errorf("creating message: %w", err)
			}
		}
	}

	log.Println("Seeding join requests...")
	for i, post := range posts {
		if i%4 != 0 {
			continue
		}
		sender := users[(i+1)%len(users)]
		if sender.ID == post.AuthorID {
			continue
		}
		if _, err := s.factory.CreateJoinRequest(post.ID, sender.ID); err != nil {
			continue
		}
	}

	log.Printf("Seeded %d users, %d posts.", len(users), len(posts))
	return nil
}
