package main

import (
	"fmt"
	"os"

	"github.com/formbase/forms-go/config"
	"github.com/formbase/forms-go/db"
	"github.com/formbase/forms-go/models"
	"github.com/formbase/forms-go/repositories"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v2"
)

type seedQuestion struct {
	Type     string   `yaml:"type"`
	Title    string   `yaml:"title"`
	Required bool     `yaml:"required"`
	Options  []string `yaml:"options"`
}

type seedForm struct {
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Questions   []seedQuestion `yaml:"questions"`
}

type seedUser struct {
	Email    string     `yaml:"email"`
	Password string     `yaml:"password"`
	FullName string     `yaml:"full_name"`
	Forms    []seedForm `yaml:"forms"`
}

type seedFile struct {
	Users []seedUser `yaml:"users"`
}

// Loads demo users and forms from a YAML file into the database. Existing
// users (matched by email) are reused so the script can run repeatedly.
func main() {
	path := "scripts/seed_forms.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		fmt.Println("[ERROR] read seed file:", err)
		os.Exit(1)
	}

	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		fmt.Println("[ERROR] parse seed file:", err)
		os.Exit(1)
	}

	config.LoadConfig()
	db.Init()
	repos := repositories.New()

	created := 0
	for _, su := range seed.Users {
		user, err := repos.User.FindByEmail(su.Email)
		if err != nil {
			hashed, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
			if err != nil {
				fmt.Println("[ERROR] hash password:", err)
				os.Exit(1)
			}
			fullName := su.FullName
			user = models.User{
				Email:    su.Email,
				Password: string(hashed),
				FullName: &fullName,
			}
			if err := repos.User.Create(&user); err != nil {
				fmt.Println("[ERROR] create user:", err)
				os.Exit(1)
			}
		}

		for _, sf := range su.Forms {
			var questions models.QuestionList
			for _, sq := range sf.Questions {
				q := models.Question{
					ID:       uuid.NewString(),
					Type:     models.QuestionType(sq.Type),
					Title:    sq.Title,
					Required: sq.Required,
				}
				if !q.Type.Valid() {
					fmt.Printf("[ERROR] form %q: invalid question type %q\n", sf.Title, sq.Type)
					os.Exit(1)
				}
				for _, opt := range sq.Options {
					q.Options = append(q.Options, models.QuestionOption{ID: uuid.NewString(), Text: opt})
				}
				questions = append(questions, q)
			}

			form := models.Form{
				Title:        sf.Title,
				Description:  sf.Description,
				CreatorID:    user.UID,
				CreatorEmail: user.Email,
				Questions:    questions,
			}
			if _, err := repos.Form.Insert(&form); err != nil {
				fmt.Println("[ERROR] create form:", err)
				os.Exit(1)
			}
			created++
		}
	}

	fmt.Printf("[OK] seeded %d forms for %d users\n", created, len(seed.Users))
}
