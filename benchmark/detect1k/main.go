package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"log"
	"math/rand"
	"mime/multipart"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/Musoye/ecoflow-backend/pkg/db"
	"github.com/Musoye/ecoflow-backend/pkg/models"
)

var maxZones int = 1000
var detectsPerZone int = 3
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	// same .env as the server so we seed the database it serves from
	_ = godotenv.Load()

	resp, err := http.Get(fmt.Sprintf("http://%s/api/status/", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	zoneIDs, cameraIDs := seedZones()
	fmt.Printf("seeded %v zones\n", maxZones)

	imageData := makeJPEG(640, 480)

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxZones; i++ {
		i := i
		wg.Add(1)
		go func() {
			doAction(zoneIDs[i], cameraIDs[i], imageData)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v zones: used time=%v seconds, throughput=%v action/second\n",
		maxZones, usedTime.Seconds(), float64(maxZones*(detectsPerZone+2))/usedTime.Seconds(),
	)
}

// seedZones writes directly through gorm since zone management has no HTTP
// surface. The server runs sqlite in WAL mode, so a second writer is fine
// for benchmark purposes.
func seedZones() ([]uint, []uint) {
	conn := db.GetInstance(db.UseSqliteDialector()).Conn

	org := models.Organization{Name: "Benchmark Org " + uuid.NewString(), OrgType: "Warehouse"}
	if err := conn.Create(&org).Error; err != nil {
		log.Fatal("Failed to seed organization:", err)
	}

	zoneIDs := make([]uint, maxZones)
	cameraIDs := make([]uint, maxZones)
	for i := 0; i < maxZones; i++ {
		zone := models.Zone{
			OrganizationID: org.ID,
			Name:           "Benchmark Zone " + uuid.NewString(),
			ZoneType:       "Hall",
			Capacity:       uint(50 + rnd.Int31n(450)),
		}
		if err := conn.Create(&zone).Error; err != nil {
			log.Fatal("Failed to seed zone:", err)
		}
		camera := models.Camera{
			ZoneID:   zone.ID,
			Name:     "Benchmark Camera " + uuid.NewString(),
			IsActive: true,
		}
		if err := conn.Create(&camera).Error; err != nil {
			log.Fatal("Failed to seed camera:", err)
		}
		zoneIDs[i] = zone.ID
		cameraIDs[i] = camera.ID
		fmt.Printf("\rseeded zone %v", i)
	}
	fmt.Printf("\n")

	return zoneIDs, cameraIDs
}

func makeJPEG(width, height int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 4 {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{
				R: uint8(rnd.Int31n(256)),
				G: uint8(rnd.Int31n(256)),
				B: uint8(rnd.Int31n(256)),
				A: 255,
			})
		}
	}

	buf := &bytes.Buffer{}
	if err := jpeg.Encode(buf, img, nil); err != nil {
		log.Fatal("Failed to encode benchmark image:", err)
	}
	return buf.Bytes()
}

func doAction(zoneID uint, cameraID uint, imageData []byte) {
	actions := []func(){
		genDetectAction(zoneID, cameraID, imageData, detectsPerZone),
		genGetStatsAction(zoneID),
		genGetAlertsAction(),
	}
	actionNames := []string{
		"Detect",
		"GetStats",
		"GetAlerts",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for zone %v", actionNames[index], zoneID)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genDetectAction(zoneID uint, cameraID uint, imageData []byte, times int) func() {
	return func() {
		for i := 0; i < times; i++ {
			postDetect(zoneID, cameraID, imageData)
		}
	}
}

func flipCoin() bool {
	return rnd.Int31n(100000)%2 == 0
}

func postDetect(zoneID uint, cameraID uint, imageData []byte) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	_ = mw.WriteField("zone_id", fmt.Sprintf("%d", zoneID))
	// camera_id is optional on the endpoint; exercise both shapes
	if flipCoin() {
		_ = mw.WriteField("camera_id", fmt.Sprintf("%d", cameraID))
	}
	part, err := mw.CreateFormFile("file", "benchmark.jpg")
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		return
	}
	if _, err := part.Write(imageData); err != nil {
		fmt.Printf("\nerror: %v\n", err)
		return
	}
	_ = mw.Close()

	resp, err := http.Post(
		fmt.Sprintf("http://%s/sensor/detect/", httpHostPort),
		mw.FormDataContentType(),
		body,
	)
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	// 429 is expected under load; anything else non-200 is worth surfacing
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusTooManyRequests {
		fmt.Printf("\nresponse status code != 200: %v\n", resp.StatusCode)
	}
}

func genGetStatsAction(zoneID uint) func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/carbon/stats/?zone_id=%d", httpHostPort, zoneID))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp.StatusCode)
		}
	}
}

func genGetAlertsAction() func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/alerts/?status=OPEN", httpHostPort))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp.StatusCode)
		}
	}
}
