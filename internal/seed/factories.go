// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"tuiter/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		opts: opts,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	// uuid suffix keeps generated handles unique across repeated runs
	handle := strings.ToLower(gofakeit.Username()) + "-" + uuid.NewString()[:8]

	user := &models.User{
		Username:     handle,
		Email:        handle + "@" + gofakeit.DomainName(),
		FirstName:    gofakeit.FirstName(),
		LastName:     gofakeit.LastName(),
		Biography:    gofakeit.Sentence(10),
		ProfilePhoto: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", uuid.NewString()),
		HeaderImage:  fmt.Sprintf("https://picsum.photos/seed/%s/1500/500", uuid.NewString()),
		AccountType:  models.AccountTypePersonal,
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildTuit constructs a tuit for the given author without persisting it.
// Useful for batching.
func (f *Factory) BuildTuit(author *models.User, overrides ...func(*models.Tuit)) *models.Tuit {
	tuit := &models.Tuit{
		Tuit:       generateTuitText(f.rng),
		PostedByID: author.ID,
	}

	// realistic posted_on spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	tuit.PostedOn = time.Now().
		Add(-time.Duration(daysBack) * 24 * time.Hour).
		Add(-time.Duration(hoursBack) * time.Hour).
		Add(-time.Duration(minsBack) * time.Minute)

	for _, override := range overrides {
		override(tuit)
	}
	return tuit
}

// CreateTuit constructs and persists a tuit for the given author.
func (f *Factory) CreateTuit(author *models.User, overrides ...func(*models.Tuit)) (*models.Tuit, error) {
	tuit := f.BuildTuit(author, overrides...)
	if err := f.db.Create(tuit).Error; err != nil {
		return nil, err
	}
	return tuit, nil
}

// CreateTuitsBatch persists multiple tuits in a single DB call.
func (f *Factory) CreateTuitsBatch(tuits []*models.Tuit) error {
	if len(tuits) == 0 {
		return nil
	}
	return f.db.Create(&tuits).Error
}

// CreateReaction persists a like or dislike from user to tuit.
func (f *Factory) CreateReaction(user *models.User, tuit *models.Tuit, kind models.ReactionType) error {
	return f.db.Create(&models.Like{
		UserID: user.ID,
		TuitID: tuit.ID,
		Type:   kind,
	}).Error
}

// CreateFollow persists a follower -> followed edge.
func (f *Factory) CreateFollow(follower, followed *models.User) error {
	return f.db.Create(&models.Follow{
		FollowerID:  follower.ID,
		FollowingID: followed.ID,
	}).Error
}

// CreateBookmark persists a bookmark from user to tuit.
func (f *Factory) CreateBookmark(user *models.User, tuit *models.Tuit) error {
	return f.db.Create(&models.Bookmark{
		UserID: user.ID,
		TuitID: tuit.ID,
	}).Error
}

// CreateMessage persists a direct message between two users.
func (f *Factory) CreateMessage(from, to *models.User, text string) (*models.Message, error) {
	if text == "" {
		text = gofakeit.Sentence(8)
	}
	msg := &models.Message{
		Message: text,
		FromID:  from.ID,
		ToID:    to.ID,
	}
	if err := f.db.Create(msg).Error; err != nil {
		return nil, err
	}
	return msg, nil
}

var (
	tuitOpeners = []string{
		"Just shipped", "Finally finished", "Hot take:", "Today I learned about",
		"Still thinking about", "Cannot stop reading about", "Unpopular opinion:",
		"Big news:", "Quick thread on", "Honestly loving",
	}

	tuitTopics = []string{
		"a new side project", "the migration at work", "distributed caching",
		"structured logging", "this coffee place downtown", "the morning run",
		"an old sci-fi novel", "database indexing", "weekend plans",
		"keyboard shortcuts", "open source maintainership", "the playoffs",
	}

	tuitClosers = []string{
		"and it feels great.", "and I have questions.", "ask me anything.",
		"more soon.", "what a day.", "highly recommend.", "never again.",
		"thoughts?", "", "",
	}
)

// generateTuitText produces a short post under the 280 character ceiling.
func generateTuitText(r *rand.Rand) string {
	opener := tuitOpeners[r.Intn(len(tuitOpeners))]
	topic := tuitTopics[r.Intn(len(tuitTopics))]
	closer := tuitClosers[r.Intn(len(tuitClosers))]

	text := opener + " " + topic
	if closer != "" {
		text += " " + closer
	}
	return strings.TrimSpace(text)
}
