package seed

import (
	"fmt"
	"log"

	"tuiter/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumTuits    int
	ShouldClean bool
	SkipBcrypt  bool
	// MaxDays controls how far back generated posted_on timestamps spread.
	MaxDays int
}

// Run populates the database with test data: users, tuits, reactions,
// follows, bookmarks and a few direct messages.
func Run(db *gorm.DB, opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 10
	}
	if opts.NumTuits <= 0 {
		opts.NumTuits = 50
	}

	log.Printf("Seeding database with %d users and %d tuits...", opts.NumUsers, opts.NumTuits)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("warning: could not clear all existing data, continuing anyway")
		}
	}

	factory := NewFactory(db, opts)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create users: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("created %d users", len(users))

	tuits := make([]*models.Tuit, 0, opts.NumTuits)
	for i := 0; i < opts.NumTuits; i++ {
		author := users[factory.rng.Intn(len(users))]
		tuits = append(tuits, factory.BuildTuit(author))
	}
	if err := factory.CreateTuitsBatch(tuits); err != nil {
		return fmt.Errorf("failed to create tuits: %w", err)
	}
	log.Printf("created %d tuits", len(tuits))

	reactions, err := seedReactions(factory, users, tuits)
	if err != nil {
		return fmt.Errorf("failed to create reactions: %w", err)
	}
	log.Printf("created %d reactions", reactions)

	follows, err := seedFollows(factory, users)
	if err != nil {
		return fmt.Errorf("failed to create follows: %w", err)
	}
	log.Printf("created %d follow edges", follows)

	bookmarks, err := seedBookmarks(factory, users, tuits)
	if err != nil {
		return fmt.Errorf("failed to create bookmarks: %w", err)
	}
	log.Printf("created %d bookmarks", bookmarks)

	messages, err := seedMessages(factory, users)
	if err != nil {
		return fmt.Errorf("failed to create messages: %w", err)
	}
	log.Printf("created %d messages", messages)

	log.Println("Database seeding completed")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("clearing existing data...")
	sql := `TRUNCATE TABLE messages, bookmarks, follows, likes, tuits, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

// seedReactions gives roughly a third of user/tuit pairs a reaction,
// skewed toward likes. At most one reaction per pair.
func seedReactions(f *Factory, users []*models.User, tuits []*models.Tuit) (int, error) {
	count := 0
	for _, tuit := range tuits {
		for _, user := range users {
			roll := f.rng.Intn(10)
			switch {
			case roll < 3:
				if err := f.CreateReaction(user, tuit, models.ReactionLiked); err != nil {
					return count, err
				}
				count++
			case roll == 3:
				if err := f.CreateReaction(user, tuit, models.ReactionDisliked); err != nil {
					return count, err
				}
				count++
			}
		}
	}
	return count, nil
}

func seedFollows(f *Factory, users []*models.User) (int, error) {
	count := 0
	for _, follower := range users {
		for _, followed := range users {
			if follower.ID == followed.ID {
				continue
			}
			if f.rng.Intn(10) < 3 {
				if err := f.CreateFollow(follower, followed); err != nil {
					return count, err
				}
				count++
			}
		}
	}
	return count, nil
}

func seedBookmarks(f *Factory, users []*models.User, tuits []*models.Tuit) (int, error) {
	count := 0
	for _, user := range users {
		for _, tuit := range tuits {
			if f.rng.Intn(10) == 0 {
				if err := f.CreateBookmark(user, tuit); err != nil {
					return count, err
				}
				count++
			}
		}
	}
	return count, nil
}

// seedMessages gives each user a short exchange with one random peer.
func seedMessages(f *Factory, users []*models.User) (int, error) {
	if len(users) < 2 {
		return 0, nil
	}
	count := 0
	for _, from := range users {
		to := users[f.rng.Intn(len(users))]
		if to.ID == from.ID {
			continue
		}
		if _, err := f.CreateMessage(from, to, ""); err != nil {
			return count, err
		}
		count++
		if _, err := f.CreateMessage(to, from, ""); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
