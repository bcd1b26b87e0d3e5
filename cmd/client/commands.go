package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/academyhub/academy-client/internal/client"
	"github.com/academyhub/academy-client/models"
)

const usage = `usage: academy-client [flags] <command>

commands:
  login        authenticate and persist the session
  logout       end the session locally and server-side
  whoami       show the authenticated user's profile
  courses      list visible courses
  quizzes      list quizzes, optionally for one course
  upload       upload a file-backed course resource
  admin-users  list user accounts (admin role required)

run with no command to keep the session alive until interrupted.
`

// runCommand executes one subcommand against the running app and returns the
// process exit code.
func runCommand(ctx context.Context, app *client.App, args []string) int {
	name, rest := args[0], args[1:]

	var err error
	switch name {
	case "login":
		err = cmdLogin(ctx, app, rest)
	case "logout":
		err = app.Logout(ctx)
	case "whoami":
		err = cmdWhoami(ctx, app)
	case "courses":
		err = cmdCourses(ctx, app)
	case "quizzes":
		err = cmdQuizzes(ctx, app, rest)
	case "upload":
		err = cmdUpload(ctx, app, rest)
	case "admin-users":
		err = cmdAdminUsers(ctx, app, rest)
	case "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n%s", name, usage)
		return 2
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

func cmdLogin(ctx context.Context, app *client.App, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	remember := fs.Bool("remember", false, "request a long-lived token")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result := app.Login(ctx, models.LoginRequest{
		Email:      *email,
		Password:   *password,
		RememberMe: *remember,
	})
	if !result.Success {
		return fmt.Errorf("login failed: %s", result.Message)
	}

	fmt.Printf("logged in as %s (%s)\n", result.User.Name, result.User.Role)
	return nil
}

func cmdWhoami(ctx context.Context, app *client.App) error {
	user, err := app.Services().Auth.Profile(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%s <%s>\nrole: %s\n", user.Name, user.Email, user.Role)
	if user.DepartmentName != "" {
		fmt.Printf("department: %s\n", user.DepartmentName)
	}
	return nil
}

func cmdCourses(ctx context.Context, app *client.App) error {
	courses, err := app.Services().Courses.List(ctx)
	if err != nil {
		return err
	}

	for _, c := range courses {
		fmt.Printf("%6d  %-40s  %s\n", c.ID, c.Title, c.DepartmentName)
	}
	return nil
}

func cmdQuizzes(ctx context.Context, app *client.App, args []string) error {
	fs := flag.NewFlagSet("quizzes", flag.ContinueOnError)
	courseID := fs.Int64("course", 0, "restrict to one course")
	if err := fs.Parse(args); err != nil {
		return err
	}

	quizzes, err := app.Services().Quizzes.List(ctx, *courseID)
	if err != nil {
		return err
	}

	for _, q := range quizzes {
		fmt.Printf("%6d  %-40s  %d questions\n", q.ID, q.Title, q.QuestionCount)
	}
	return nil
}

func cmdUpload(ctx context.Context, app *client.App, args []string) error {
	fs := flag.NewFlagSet("upload", flag.ContinueOnError)
	courseID := fs.Int64("course", 0, "owning course ID")
	title := fs.String("title", "", "resource title")
	resType := fs.String("type", "pdf", "resource type (pdf, video)")
	description := fs.String("description", "", "resource description")
	path := fs.String("file", "", "path of the file to upload")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := os.Open(*path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	input := models.ResourceInput{
		Title:       *title,
		Type:        models.ResourceType(*resType),
		CourseID:    *courseID,
		Description: *description,
	}
	file := models.FileUpload{
		Name:   filepath.Base(*path),
		Size:   info.Size(),
		Reader: f,
	}

	resource, err := app.Services().Resources.UploadFile(ctx, input, file, func(p models.UploadProgress) {
		switch {
		case p.Aborted:
			fmt.Println("\rupload aborted")
		case p.Done:
			fmt.Println("\r100%")
		default:
			fmt.Printf("\r%3d%%", p.Percent)
		}
	})
	if err != nil {
		return err
	}

	fmt.Printf("uploaded resource %d: %s\n", resource.ID, resource.Title)
	return nil
}

func cmdAdminUsers(ctx context.Context, app *client.App, args []string) error {
	fs := flag.NewFlagSet("admin-users", flag.ContinueOnError)
	role := fs.String("role", "", "filter by role")
	status := fs.String("status", "", "filter by account status")
	search := fs.String("search", "", "filter by name or email substring")
	if err := fs.Parse(args); err != nil {
		return err
	}

	users, err := app.Services().Admin.Users(ctx, models.UserFilter{
		Search: *search,
		Role:   models.Role(*role),
		Status: models.UserStatus(*status),
	})
	if err != nil {
		return err
	}

	for _, u := range users {
		fmt.Printf("%6d  %-30s  %-25s  %-10s  %s\n", u.ID, u.Name, u.Email, u.Role, u.Status)
	}
	return nil
}
