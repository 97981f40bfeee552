package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/fairhub/internal/common"
	"github.com/dmitrijs2005/fairhub/internal/filex"
)

func (a *App) Register(ctx context.Context) error {
	userName, err := GetSimpleText(a.reader, "Enter user name", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	displayName, err := GetSimpleText(a.reader, "Enter display name (shown on your projects)", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.client.Register(ctx, userName, displayName, string(password)); err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Println("Success! You can now log in.")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	userName, err := GetSimpleText(a.reader, "Enter user name", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.client.Login(ctx, userName, string(password)); err != nil {
		fmt.Println(err.Error())
		return err
	}

	a.userName = userName
	fmt.Println("Logged in.")
	return nil
}

// Submit walks the user through one project submission: text fields, then
// up to four image paths in display order.
func (a *App) Submit(ctx context.Context) error {
	fairID, err := GetSimpleText(a.reader, "Fair ID", os.Stdout)
	if err != nil {
		return err
	}
	title, err := GetSimpleText(a.reader, "Project title (5-100 characters)", os.Stdout)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Contact email", os.Stdout)
	if err != nil {
		return err
	}
	about, err := GetMultiline(a.reader, "Describe your project", os.Stdout)
	if err != nil {
		return err
	}

	var files []*filex.UploadFile
	for len(files) < common.MaxSubmissionImages-1 {
		prompt := fmt.Sprintf("Image path %d (empty to finish)", len(files)+1)
		path, err := GetSimpleText(a.reader, prompt, os.Stdout)
		if err != nil {
			return err
		}
		if path == "" {
			break
		}
		f, err := filex.ReadUploadFile(path)
		if err != nil {
			fmt.Println(err.Error())
			continue
		}
		files = append(files, f)
	}
	if len(files) == 0 {
		fmt.Println("At least one image is required.")
		return common.ErrorValidation
	}

	created, err := a.client.Submit(ctx, fairID, title, email, about, files)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Submitted! ID: %s\n", created.ID)
	return nil
}

func (a *App) List(ctx context.Context) error {
	fairID, err := GetSimpleText(a.reader, "Fair ID", os.Stdout)
	if err != nil {
		return err
	}

	views, err := a.client.List(ctx, fairID)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	if len(views) == 0 {
		fmt.Println("No submissions yet.")
		return nil
	}
	for _, v := range views {
		creator := "(deleted user)"
		if v.Creator != nil {
			creator = v.Creator.DisplayName
		}
		fmt.Printf("%s  %-30s  by %-20s  images:%d  +%d/-%d  comments:%d\n",
			v.Submission.ID, v.Submission.Title, creator,
			len(v.ImageURLs), v.Votes.Up, v.Votes.Down, v.CommentCount)
	}
	return nil
}

func (a *App) Show(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Submission ID", os.Stdout)
	if err != nil {
		return err
	}

	view, err := a.client.Get(ctx, id)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Title:  %s\n", view.Submission.Title)
	if view.Creator != nil {
		fmt.Printf("By:     %s\n", view.Creator.DisplayName)
	}
	fmt.Printf("About:  %s\n", view.Submission.About)
	fmt.Printf("Votes:  +%d / -%d\n", view.Votes.Up, view.Votes.Down)
	for i, url := range view.ImageURLs {
		fmt.Printf("Image %d: %s\n", i+1, url)
	}

	comments, err := a.client.Comments(ctx, id)
	if err != nil {
		return err
	}
	for _, c := range comments {
		fmt.Printf("  [%s] %s\n", c.CreatedAt.Format("2006-01-02 15:04"), c.Body)
	}
	return nil
}

func (a *App) Delete(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Submission ID to delete", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.client.Delete(ctx, id); err != nil {
		fmt.Println(err.Error())
		return err
	}
	fmt.Println("Deleted.")
	return nil
}

func (a *App) Vote(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Submission ID", os.Stdout)
	if err != nil {
		return err
	}
	vote, err := GetSimpleText(a.reader, "Vote (up/down)", os.Stdout)
	if err != nil {
		return err
	}

	voteType := ""
	switch strings.ToLower(vote) {
	case "up", "u", "+":
		voteType = "upvote"
	case "down", "d", "-":
		voteType = "downvote"
	default:
		fmt.Println("Please answer up or down.")
		return common.ErrorValidation
	}

	if err := a.client.Vote(ctx, id, voteType); err != nil {
		fmt.Println(err.Error())
		return err
	}
	fmt.Println("Vote recorded.")
	return nil
}

func (a *App) Comment(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Submission ID", os.Stdout)
	if err != nil {
		return err
	}
	body, err := GetMultiline(a.reader, "Your comment", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.client.Comment(ctx, id, body); err != nil {
		fmt.Println(err.Error())
		return err
	}
	fmt.Println("Comment posted.")
	return nil
}
