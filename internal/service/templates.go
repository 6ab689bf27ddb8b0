package service

import (
	"html/template"
	"log/slog"
	"net/http"

	"freundebuch/internal/models"
)

// The screens are deliberately minimal: presentation and styling are out of
// scope, the markup only has to carry the forms and inline messages.

type authData struct {
	Error   string
	Message string
}

type dashboardData struct {
	Email   string
	Friends []models.Friend
	Form    friendForm
	Error   string
}

type profileData struct {
	Friend      models.Friend
	Suggestions []models.GiftSuggestion
	Error       string
}

var authTmpl = template.Must(template.New("auth").Parse(`<!doctype html>
<html lang="de">
<head><meta charset="utf-8"><title>Freundebuch</title></head>
<body>
<h1>Freundebuch</h1>
<p>Dein digitales Buch für Freunde.</p>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{if .Message}}<p class="message">{{.Message}}</p>{{end}}
<form method="post" action="/signin">
  <label>E-Mail Adresse <input type="email" name="email" required></label>
  <label>Passwort <input type="password" name="password" required></label>
  <button type="submit">Anmelden</button>
  <button type="submit" formaction="/signup">Registrieren</button>
</form>
</body>
</html>
`))

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<!doctype html>
<html lang="de">
<head><meta charset="utf-8"><title>Meine Freunde</title></head>
<body>
<header>
  <h1>Meine Freunde</h1>
  <span>{{.Email}}</span>
  <form method="post" action="/signout"><button type="submit">Abmelden</button></form>
</header>
<section>
  <h2>Neuen Freund hinzufügen</h2>
  <form method="post" action="/friends">
    <input name="name" placeholder="Name" value="{{.Form.Name}}" required>
    <input name="birthdate" type="date" value="{{.Form.Birthdate}}">
    <input name="hobbies" placeholder="Hobbies" value="{{.Form.Hobbies}}">
    <input name="favorite_color" placeholder="Lieblingsfarbe" value="{{.Form.FavoriteColor}}">
    <input name="favorite_food" placeholder="Lieblingsessen" value="{{.Form.FavoriteFood}}">
    <textarea name="notes" placeholder="Notizen...">{{.Form.Notes}}</textarea>
    <button type="submit">Hinzufügen</button>
  </form>
  {{if .Error}}<p class="error">{{.Error}}</p>{{end}}
</section>
<section>
  <h2>Freundesliste</h2>
  {{if not .Friends}}
  <p>Du hast noch keine Freunde hinzugefügt.</p>
  {{else}}
  <ul>
    {{range .Friends}}<li><a href="/friends/{{.ID}}">{{.Name}}</a>{{if .Birthdate}} ({{.Birthdate}}){{end}}</li>
    {{end}}
  </ul>
  {{end}}
</section>
</body>
</html>
`))

var profileTmpl = template.Must(template.New("profile").Parse(`<!doctype html>
<html lang="de">
<head><meta charset="utf-8"><title>{{.Friend.Name}}</title></head>
<body>
<header>
  <form method="post" action="/back"><button type="submit">Zurück</button></form>
  <h1>{{.Friend.Name}}</h1>
</header>
<section>
  <h2>Profilinformationen</h2>
  <dl>
    <dt>Geburtstag</dt><dd>{{if .Friend.Birthdate}}{{.Friend.Birthdate}}{{else}}-{{end}}</dd>
    <dt>Hobbies</dt><dd>{{if .Friend.Hobbies}}{{.Friend.Hobbies}}{{else}}-{{end}}</dd>
    <dt>Lieblingsfarbe</dt><dd>{{if .Friend.FavoriteColor}}{{.Friend.FavoriteColor}}{{else}}-{{end}}</dd>
    <dt>Lieblingsessen</dt><dd>{{if .Friend.FavoriteFood}}{{.Friend.FavoriteFood}}{{else}}-{{end}}</dd>
    <dt>Notizen</dt><dd>{{if .Friend.Notes}}{{.Friend.Notes}}{{else}}-{{end}}</dd>
  </dl>
</section>
<section>
  <h2>Geschenkvorschläge</h2>
  <form method="post" action="/suggestions"><button type="submit">Ideen generieren</button></form>
  {{if .Error}}<p class="error">{{.Error}}</p>{{end}}
  {{if .Suggestions}}
  <ul>
    {{range .Suggestions}}<li><strong>{{.Name}}</strong> ({{.EstimatedPrice}}): {{.Reason}}</li>
    {{end}}
  </ul>
  {{else}}
  <p>Klicke auf "Ideen generieren", um Geschenkvorschläge zu erhalten.</p>
  {{end}}
</section>
</body>
</html>
`))

func render(rw http.ResponseWriter, tmpl *template.Template, data any) {
	rw.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(rw, data); err != nil {
		slog.Error("Failed to render screen", "template", tmpl.Name(), "error", err)
	}
}
