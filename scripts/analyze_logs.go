package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

type LogStats struct {
	TotalErrors      int
	DealsPublished   int
	FailedPublishes  int
	ReviewsSubmitted int
	FailedReviews    int
	FilterQueries    int
	VendorActivities map[string]int
	ErrorPatterns    map[string]int
}

func main() {
	// Get today's date for log file names
	today := time.Now().Format("2006-01-02")
	logDir := "./logs"

	// Initialize stats
	stats := &LogStats{
		VendorActivities: make(map[string]int),
		ErrorPatterns:    make(map[string]int),
	}

	// Analyze error logs
	analyzeErrorLogs(filepath.Join(logDir, fmt.Sprintf("error-%s.log", today)), stats)

	// Analyze info logs
	analyzeInfoLogs(filepath.Join(logDir, fmt.Sprintf("info-%s.log", today)), stats)

	// Print report
	printReport(stats)
}

func analyzeErrorLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		stats.TotalErrors++

		// Count failed deal publishes
		if strings.Contains(line, "Failed to create deal") || strings.Contains(line, "Failed to create vendor") {
			stats.FailedPublishes++
			extractVendorActivity(line, stats)
		}

		// Count failed review submissions
		if strings.Contains(line, "Failed to create review") || strings.Contains(line, "Invalid review rating") {
			stats.FailedReviews++
		}

		// Extract error patterns
		extractErrorPattern(line, stats)
	}
}

func analyzeInfoLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()

		// Count successful deal publishes
		if strings.Contains(line, "Successfully created deal") {
			stats.DealsPublished++
		}

		// Count vendor submissions by email
		if strings.Contains(line, "Processing deal submission") {
			extractVendorActivity(line, stats)
		}

		// Count review submissions
		if strings.Contains(line, "Successfully created review") {
			stats.ReviewsSubmitted++
		}

		// Count filtered deal listings
		if strings.Contains(line, "GetDeals called") {
			stats.FilterQueries++
		}
	}
}

func extractVendorActivity(line string, stats *LogStats) {
	// Extract vendor email from log line
	emailRegex := regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	if email := emailRegex.FindString(line); email != "" {
		stats.VendorActivities[email]++
	}
}

func extractErrorPattern(line string, stats *LogStats) {
	// Extract the main error message
	parts := strings.Split(line, ":")
	if len(parts) > 1 {
		errorMsg := strings.TrimSpace(parts[1])
		stats.ErrorPatterns[errorMsg]++
	}
}

func printReport(stats *LogStats) {
	fmt.Println("\n=== Log Analysis Report ===")
	fmt.Println("Generated:", time.Now().Format("2006-01-02 15:04:05"))

	fmt.Println("\n1. Deal Activity:")
	fmt.Printf("   Deals Published: %d\n", stats.DealsPublished)
	fmt.Printf("   Failed Publishes: %d\n", stats.FailedPublishes)
	fmt.Printf("   Listing Queries: %d\n", stats.FilterQueries)

	fmt.Println("\n2. Review Activity:")
	fmt.Printf("   Reviews Submitted: %d\n", stats.ReviewsSubmitted)
	fmt.Printf("   Failed Reviews: %d\n", stats.FailedReviews)

	fmt.Println("\n3. Error Statistics:")
	fmt.Printf("   Total Errors: %d\n", stats.TotalErrors)

	fmt.Println("\n4. Most Active Vendors:")
	printTopVendors(stats.VendorActivities, 5)

	fmt.Println("\n5. Most Common Errors:")
	printTopErrors(stats.ErrorPatterns, 5)
}

func printTopVendors(vendors map[string]int, limit int) {
	type vendorActivity struct {
		email string
		count int
	}

	var activities []vendorActivity
	for email, count := range vendors {
		activities = append(activities, vendorActivity{email, count})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].count > activities[j].count
	})

	for i, activity := range activities {
		if i >= limit {
			break
		}
		fmt.Printf("   %s: %d submissions\n", activity.email, activity.count)
	}
}

func printTopErrors(errors map[string]int, limit int) {
	type errorCount struct {
		error string
		count int
	}

	var errorList []errorCount
	for err, count := range errors {
		errorList = append(errorList, errorCount{err, count})
	}

	sort.Slice(errorList, func(i, j int) bool {
		return errorList[i].count > errorList[j].count
	})

	for i, err := range errorList {
		if i >= limit {
			break
		}
		fmt.Printf("   %s: %d occurrences\n", err.error, err.count)
	}
}
