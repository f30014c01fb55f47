package finbook

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Profile is a named sub-ledger under a user, isolating transactions
// under its own currency.
type Profile struct {
	ProfileID   string `json:"profile_id"`
	ProfileName string `json:"profile_name"`
	Currency    string `json:"currency"`
}

// User is one registered account. The password hash is stored under
// the legacy "password" key; plaintext is never persisted.
type User struct {
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"password"`
	Profiles     []Profile `json:"profiles"`
}

// FindProfile returns the user's profile with the given id.
func (u User) FindProfile(profileID string) (Profile, bool) {
	for _, p := range u.Profiles {
		if p.ProfileID == profileID {
			return p, true
		}
	}
	return Profile{}, false
}

// ProfileByName returns the user's profile with the given name,
// matched case-insensitively.
func (u User) ProfileByName(name string) (Profile, bool) {
	for _, p := range u.Profiles {
		if strings.EqualFold(p.ProfileName, name) {
			return p, true
		}
	}
	return Profile{}, false
}

var usernameRE = regexp.MustCompile(`^[A-Za-z0-9_-]{3,20}$`)

// UserStore owns the users JSON file: credentials, and the profile
// directory nested inside each user record. Profile deletion cascades
// into the injected ledger store.
type UserStore struct {
	path   string
	cost   int // bcrypt cost factor
	ledger *LedgerStore
}

// NewUserStore creates a store over the given JSON file path. The
// ledger store is required for the profile-deletion cascade.
func NewUserStore(path string, bcryptCost int, ledger *LedgerStore) *UserStore {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserStore{path: path, cost: bcryptCost, ledger: ledger}
}

// Path returns the backing file path, for the backup component.
func (s *UserStore) Path() string { return s.path }

// load reads all users. A missing or malformed file is an empty list,
// never a crash.
func (s *UserStore) load() ([]User, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("read", s.path, err)
	}
	var users []User
	if err := json.Unmarshal(data, &users); err != nil {
		log.Printf("users %s: malformed file, treating as empty: %v", s.path, err)
		return nil, nil
	}
	return users, nil
}

func (s *UserStore) save(users []User) error {
	data, err := json.MarshalIndent(users, "", "    ")
	if err != nil {
		return fmt.Errorf("could not marshal users: %w", err)
	}
	return writeFileAtomic(s.path, data)
}

// Register creates a new user with one default profile, so the
// at-least-one-profile invariant holds from birth. Username matching
// against existing names is case-sensitive.
func (s *UserStore) Register(username, password, profileName, currency string) (User, error) {
	if !usernameRE.MatchString(username) {
		return User{}, invalidf("username", "must be 3-20 characters of letters, digits, '-' or '_'")
	}
	if len(password) < 6 {
		return User{}, invalidf("password", "must be at least 6 characters")
	}
	if strings.TrimSpace(profileName) == "" {
		return User{}, invalidf("profile_name", "must not be empty")
	}

	users, err := s.load()
	if err != nil {
		return User{}, err
	}
	for _, u := range users {
		if u.Name == username {
			return User{}, invalidf("username", "%q already exists", username)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return User{}, fmt.Errorf("could not hash password: %w", err)
	}

	user := User{
		UserID:       uuid.NewString(),
		Name:         username,
		PasswordHash: string(hash),
		Profiles:     []Profile{newProfile(profileName, currency)},
	}
	users = append(users, user)
	if err := s.save(users); err != nil {
		return User{}, err
	}
	return user, nil
}

func newProfile(name, currency string) Profile {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = "USD"
	}
	return Profile{
		ProfileID:   uuid.NewString(),
		ProfileName: strings.TrimSpace(name),
		Currency:    currency,
	}
}

// Authenticate looks the user up by name and verifies the password
// hash. Unknown user and wrong password are indistinguishable in the
// result: both return ErrInvalidCredentials.
func (s *UserStore) Authenticate(username, password string) (User, error) {
	users, err := s.load()
	if err != nil {
		return User{}, err
	}
	for _, u := range users {
		if u.Name != username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil {
			return u, nil
		}
		break
	}
	return User{}, ErrInvalidCredentials
}

// Find returns the user record by name, or ErrNotFound.
func (s *UserStore) Find(username string) (User, error) {
	users, err := s.load()
	if err != nil {
		return User{}, err
	}
	for _, u := range users {
		if u.Name == username {
			return u, nil
		}
	}
	return User{}, fmt.Errorf("user %q: %w", username, ErrNotFound)
}

// CreateProfile adds a profile to the user. Profile names are unique
// per user, case-insensitively; the currency defaults to USD and is
// always uppercased.
func (s *UserStore) CreateProfile(username, name, currency string) (Profile, error) {
	if strings.TrimSpace(name) == "" {
		return Profile{}, invalidf("profile_name", "must not be empty")
	}

	users, err := s.load()
	if err != nil {
		return Profile{}, err
	}
	for i, u := range users {
		if u.Name != username {
			continue
		}
		if _, exists := u.ProfileByName(name); exists {
			return Profile{}, invalidf("profile_name", "%q already exists", strings.TrimSpace(name))
		}
		p := newProfile(name, currency)
		users[i].Profiles = append(users[i].Profiles, p)
		if err := s.save(users); err != nil {
			return Profile{}, err
		}
		return p, nil
	}
	return Profile{}, fmt.Errorf("user %q: %w", username, ErrNotFound)
}

// DeleteProfile removes a profile and cascades into the ledger.
//
// It refuses to delete a user's last remaining profile. Transactions
// are purged before the profile record is removed: if the cascade
// fails, the profile stays, so no ledger row can ever reference a
// deleted profile. Callers must pass the credential gate first; the
// store performs no authentication of its own.
func (s *UserStore) DeleteProfile(username, profileID string) error {
	users, err := s.load()
	if err != nil {
		return err
	}
	for i, u := range users {
		if u.Name != username {
			continue
		}
		idx := -1
		for j, p := range u.Profiles {
			if p.ProfileID == profileID {
				idx = j
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("profile %s: %w", profileID, ErrNotFound)
		}
		if len(u.Profiles) <= 1 {
			return ErrLastProfile
		}

		// Cascade first. On failure the profile record is untouched.
		if _, err := s.ledger.DeleteByProfile(profileID); err != nil {
			return fmt.Errorf("could not purge transactions of profile %s: %w", profileID, err)
		}

		users[i].Profiles = append(u.Profiles[:idx], u.Profiles[idx+1:]...)
		return s.save(users)
	}
	return fmt.Errorf("user %q: %w", username, ErrNotFound)
}
