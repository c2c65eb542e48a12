package render

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// ScreenSize queries the X server for the primary screen dimensions,
// used to place the clock near the top-right corner when no pivot is
// configured.
func ScreenSize() (int, int, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return 0, 0, err
	}
	defer conn.Close()

	screen := xproto.Setup(conn).DefaultScreen(conn)
	return int(screen.WidthInPixels), int(screen.HeightInPixels), nil
}
