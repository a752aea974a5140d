package assets

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/automoto/skyraid/config"
	"github.com/automoto/skyraid/shared/gamemath"
	"github.com/automoto/skyraid/sprite"
	"golang.org/x/image/vector"
)

// point is a polygon vertex relative to the image center.
type point struct{ x, y float32 }

// Outlines are drawn nose up for the plane and nose down for enemies.
var (
	planeHull = []point{
		{0, -30}, {4, -20}, {4, -6}, {28, 4}, {28, 10}, {4, 8}, {4, 20}, {12, 28},
		{-12, 28}, {-4, 20}, {-4, 8}, {-28, 10}, {-28, 4}, {-4, -6}, {-4, -20},
	}
	planeCockpit = []point{{0, -16}, {2, -10}, {0, -6}, {-2, -10}}

	enemyHull = []point{
		{0, 22}, {8, 10}, {30, 2}, {30, -6}, {10, -6}, {6, -20},
		{-6, -20}, {-10, -6}, {-30, -6}, {-30, 2}, {-8, 10},
	}
	enemyCanopy = []point{{0, 8}, {4, 2}, {0, -4}, {-4, 2}}
)

var (
	planeColor   = color.RGBA{R: 190, G: 200, B: 215, A: 255}
	cockpitColor = color.RGBA{R: 60, G: 140, B: 220, A: 255}
	enemyColor   = color.RGBA{R: 120, G: 150, B: 80, A: 255}
	canopyColor  = color.RGBA{R: 220, G: 70, B: 50, A: 255}
)

// ArtLoader builds and caches procedurally drawn frames.
type ArtLoader struct {
	planes    map[gamemath.Direction]*sprite.Frame
	bullets   map[bulletKey]*sprite.Frame
	enemy     *sprite.Frame
	explosion []*sprite.Frame
}

type bulletKey struct {
	dir   gamemath.Direction
	enemy bool
}

func NewArtLoader() *ArtLoader {
	return &ArtLoader{
		planes:  make(map[gamemath.Direction]*sprite.Frame),
		bullets: make(map[bulletKey]*sprite.Frame),
	}
}

var artLoader = NewArtLoader()

// Plane returns the player plane frame facing dir.
func Plane(dir gamemath.Direction) *sprite.Frame { return artLoader.Plane(dir) }

// Enemy returns the enemy frame.
func Enemy() *sprite.Frame { return artLoader.Enemy() }

// Bullet returns the projectile frame for a heading. Enemy bullets use a
// different color.
func Bullet(dir gamemath.Direction, enemy bool) *sprite.Frame { return artLoader.Bullet(dir, enemy) }

// Explosion returns the explosion animation frames in order.
func Explosion() []*sprite.Frame { return artLoader.Explosion() }

func (l *ArtLoader) Plane(dir gamemath.Direction) *sprite.Frame {
	if f, ok := l.planes[dir]; ok {
		return f
	}

	w, h := config.Player.FrameWidth, config.Player.FrameHeight
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillPolygon(img, rotate(planeHull, dir), planeColor)
	fillPolygon(img, rotate(planeCockpit, dir), cockpitColor)

	f := sprite.NewFrame(img)
	l.planes[dir] = f
	return f
}

func (l *ArtLoader) Enemy() *sprite.Frame {
	if l.enemy != nil {
		return l.enemy
	}

	img := image.NewRGBA(image.Rect(0, 0, config.Wave.EnemyWidth, config.Wave.EnemyHeight))
	fillPolygon(img, enemyHull, enemyColor)
	fillPolygon(img, enemyCanopy, canopyColor)

	l.enemy = sprite.NewFrame(img)
	return l.enemy
}

func (l *ArtLoader) Bullet(dir gamemath.Direction, enemy bool) *sprite.Frame {
	key := bulletKey{dir: dir, enemy: enemy}
	if f, ok := l.bullets[key]; ok {
		return f
	}

	w, h := config.Bullet.Thickness, config.Bullet.Length
	if dir == gamemath.Left || dir == gamemath.Right {
		w, h = h, w
	}
	c := config.Bullet.PlayerColor
	if enemy {
		c = config.Bullet.EnemyColor
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)

	f := sprite.NewFrame(img)
	l.bullets[key] = f
	return f
}

func (l *ArtLoader) Explosion() []*sprite.Frame {
	if l.explosion != nil {
		return l.explosion
	}

	n, size := config.Explosion.FrameCount, config.Explosion.FrameSize
	frames := make([]*sprite.Frame, n)
	for i := range frames {
		t := float64(i) / float64(max(1, n-1))
		img := image.NewRGBA(image.Rect(0, 0, size, size))

		outer := float32(8 + t*float64(size/2-8))
		fillPolygon(img, circle(outer, 24), fireColor(t))
		if t < 0.8 {
			fillPolygon(img, circle(outer*0.55, 16), fireColor(t/3))
		}
		frames[i] = sprite.NewFrame(img)
	}

	l.explosion = frames
	return frames
}

// fireColor fades from white-yellow through orange to a translucent dark red.
func fireColor(t float64) color.RGBA {
	a := uint8(255 * (1 - 0.7*t))
	r := uint8(255 * (1 - 0.4*t))
	g := uint8(230 * (1 - t))
	b := uint8(120 * math.Max(0, 1-3*t))
	// premultiplied
	return color.RGBA{
		R: uint8(uint16(r) * uint16(a) / 255),
		G: uint8(uint16(g) * uint16(a) / 255),
		B: uint8(uint16(b) * uint16(a) / 255),
		A: a,
	}
}

func circle(r float32, segments int) []point {
	pts := make([]point, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = point{r * float32(math.Cos(a)), r * float32(math.Sin(a))}
	}
	return pts
}

// rotate turns a nose-up outline to face dir.
func rotate(pts []point, dir gamemath.Direction) []point {
	out := make([]point, len(pts))
	for i, p := range pts {
		switch dir {
		case gamemath.Left:
			out[i] = point{p.y, -p.x}
		case gamemath.Right:
			out[i] = point{-p.y, p.x}
		case gamemath.Backward:
			out[i] = point{-p.x, -p.y}
		default:
			out[i] = p
		}
	}
	return out
}

// fillPolygon rasterizes a closed outline centered in dst.
func fillPolygon(dst *image.RGBA, pts []point, c color.Color) {
	b := dst.Bounds()
	cx, cy := float32(b.Dx())/2, float32(b.Dy())/2

	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(cx+pts[0].x, cy+pts[0].y)
	for _, p := range pts[1:] {
		z.LineTo(cx+p.x, cy+p.y)
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}
