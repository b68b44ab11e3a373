// package formatter renders resolved metadata, outcome logs and metric samples for the CLI
// (styled text, JSON and CSV)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"

	"github.com/desertthunder/infosys/internal/infosystem"
	"github.com/desertthunder/infosys/internal/metrics"
	"github.com/desertthunder/infosys/internal/models"
)

var styles = NewPalette("#7D56F4", "#04B575", "#FF0000", "#FFA500", "#626262")

// Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
	warn  lipgloss.Style
	help  lipgloss.Style
}

func NewPalette(t, s, e, w, h string) *Palette {
	return &Palette{
		title: NewBold(t),
		ok:    NewBold(s),
		err:   NewBold(e),
		warn:  NewStyle(w),
		help:  NewEm(h),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}

// FormatDuration renders d as m:ss, or h:mm:ss past an hour.
func FormatDuration(d time.Duration) string {
	total := int(d.Round(time.Second).Seconds())
	h, m, s := total/3600, (total%3600)/60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// ToJSON marshals v as indented JSON.
func ToJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return data, nil
}

func trackLine(i int, t *models.Track) string {
	if t == nil {
		return fmt.Sprintf("%2d. %s", i+1, styles.help.Render("(unavailable)"))
	}
	line := fmt.Sprintf("%2d. %s - %s", i+1, t.Artist, t.Name)
	if t.Album != "" {
		line += fmt.Sprintf(" (%s)", t.Album)
	}
	if t.Duration > 0 {
		line += " " + styles.help.Render("["+FormatDuration(t.Duration)+"]")
	}
	return line
}

func writeTracks(b *strings.Builder, tracks []*models.Track, indent string) {
	for i, t := range tracks {
		b.WriteString(indent + trackLine(i, t) + "\n")
	}
}

// ArtistText renders an artist with its albums and top hits.
func ArtistText(a *models.Artist) string {
	var b strings.Builder
	b.WriteString(styles.title.Render(a.Name()))
	if a.ID() != "" {
		b.WriteString(" " + styles.help.Render(a.ID()))
	}
	b.WriteString("\n")
	if bio := a.Bio(); bio != "" {
		b.WriteString(bio + "\n")
	}
	if img := a.Image(); img != nil {
		b.WriteString("Image: " + img.URL + "\n")
	}

	if hits := a.TopHits(); len(hits) > 0 {
		b.WriteString("\n" + styles.ok.Render("Top hits") + "\n")
		writeTracks(&b, hits, "")
	}
	for _, album := range a.Albums() {
		b.WriteString("\n" + AlbumText(album))
	}
	return b.String()
}

// AlbumText renders an album and its tracks.
func AlbumText(a *models.Album) string {
	var b strings.Builder
	b.WriteString(styles.title.Render(a.Name()))
	if a.Artist() != "" {
		b.WriteString(" by " + a.Artist())
	}
	if a.ReleaseDate() != "" {
		b.WriteString(" " + styles.help.Render(a.ReleaseDate()))
	}
	b.WriteString("\n")
	writeTracks(&b, a.Tracks(), "  ")
	return b.String()
}

// UserText renders a user profile and any loaded social activity.
func UserText(u *models.User) string {
	p := u.Profile()

	var b strings.Builder
	b.WriteString(styles.title.Render(u.Name()))
	if u.ID() != "" {
		b.WriteString(" " + styles.help.Render(u.ID()))
	}
	b.WriteString("\n")
	if p.About != "" {
		b.WriteString(p.About + "\n")
	}
	fmt.Fprintf(&b, "Plays: %d  Followers: %d  Following: %d\n", p.TotalPlays, p.FollowersCount, p.FollowCount)
	if p.NowPlaying != nil {
		fmt.Fprintf(&b, "Now playing: %s - %s\n", p.NowPlaying.Artist, p.NowPlaying.Name)
	}

	if actions := u.SocialActions(); len(actions) > 0 {
		b.WriteString("\n" + styles.ok.Render("Activity") + "\n")
		writeActions(&b, actions)
	}
	if feed := u.FriendsFeed(); len(feed) > 0 {
		b.WriteString("\n" + styles.ok.Render("Friends") + "\n")
		writeActions(&b, feed)
	}
	return b.String()
}

func writeActions(b *strings.Builder, actions []*models.SocialAction) {
	for _, sa := range actions {
		subject := sa.ArtistName
		switch {
		case sa.Track != nil:
			subject = sa.Track.Artist + " - " + sa.Track.Name
		case sa.TargetName != "":
			subject = sa.TargetName
		case sa.AlbumName != "":
			subject = sa.AlbumName
		}
		fmt.Fprintf(b, "  %s %s %s\n", sa.UserName, styles.warn.Render(sa.Type), subject)
	}
}

// PlaylistText renders a playlist and its entries.
func PlaylistText(p *models.Playlist) string {
	var b strings.Builder
	b.WriteString(styles.title.Render(p.Name))
	b.WriteString(" " + styles.help.Render(p.ID) + "\n")
	writeTracks(&b, p.Tracks(), "  ")
	return b.String()
}

// ResponseText renders every converted object of resp. Responses with nothing
// converted fall back to the raw shape as JSON.
func ResponseText(resp *infosystem.Response) (string, error) {
	if resp.Converted.Empty() {
		data, err := ToJSON(resp.Raw)
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	}

	var sections []string
	for _, a := range resp.Converted.Artists {
		sections = append(sections, ArtistText(a))
	}
	for _, a := range resp.Converted.Albums {
		sections = append(sections, AlbumText(a))
	}
	for _, u := range resp.Converted.Users {
		sections = append(sections, UserText(u))
	}
	for _, p := range resp.Converted.Playlists {
		sections = append(sections, PlaylistText(p))
	}
	return strings.Join(sections, "\n"), nil
}

func statusStyle(status string) lipgloss.Style {
	switch status {
	case string(infosystem.StatusDone):
		return styles.ok
	case string(infosystem.StatusCanceled), string(infosystem.StatusIdentityUnavailable), string(infosystem.StatusAuthUnavailable):
		return styles.warn
	default:
		return styles.err
	}
}

// OutcomesText renders the outcome log, one line per record.
func OutcomesText(records []*models.OutcomeRecord) string {
	if len(records) == 0 {
		return styles.help.Render("No outcomes recorded") + "\n"
	}

	var b strings.Builder
	for _, r := range records {
		fmt.Fprintf(&b, "#%-4d %s %-22s %-20s %6dms",
			r.Sequence(),
			r.CreatedAt().Local().Format(time.DateTime),
			r.Kind(),
			statusStyle(r.Status()).Render(r.Status()),
			r.Duration().Milliseconds(),
		)
		if r.Error() != "" {
			b.WriteString(" " + styles.help.Render(r.Error()))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// SamplesText renders metric samples as name{labels} value lines.
func SamplesText(samples []metrics.Sample) string {
	var b strings.Builder
	for _, s := range samples {
		b.WriteString(styles.title.Render(s.Name))
		if len(s.Labels) > 0 {
			pairs := make([]string, 0, len(s.Labels))
			for _, k := range slices.Sorted(maps.Keys(s.Labels)) {
				pairs = append(pairs, k+"="+strconv.Quote(s.Labels[k]))
			}
			b.WriteString("{" + strings.Join(pairs, ",") + "}")
		}
		b.WriteString(" " + strconv.FormatFloat(s.Value, 'g', -1, 64) + "\n")
	}
	return b.String()
}

// PlaylistToCSV exports playlist entries with columns: Position, ID, Name, Artist, Album, Duration
func PlaylistToCSV(p *models.Playlist) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Position", "ID", "Name", "Artist", "Album", "Duration"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for i, t := range p.Tracks() {
		record := []string{
			strconv.Itoa(i + 1),
			t.ID,
			t.Name,
			t.Artist,
			t.Album,
			strconv.Itoa(int(t.Duration.Seconds())),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}
	return buf.Bytes(), nil
}
