package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/resume"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/textproc"
	"github.com/jonathan/resume-matcher/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against one or more job postings",
	Long:  "Parse a resume file, compare it against a job record (or a directory of job records), and emit a JSON match report with score breakdown, skill gaps, and recommendations.",
	RunE:  runAnalyze,
}

var (
	analyzeResumeFile string
	analyzeResumeText string
	analyzeJobFile    string
	analyzeJobText    string
	analyzeJobTitle   string
	analyzeSkills     []string
	analyzeJobsDir    string
	analyzeOutDir     string
	analyzeConfigFile string
	analyzeLegacy     bool
	analyzeVerbose    bool
	analyzeMinKwLen   int
	analyzePhraseLen  int
)

// batchWorkers bounds concurrent job scoring in --jobs-dir mode.
const batchWorkers = 4

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumeFile, "resume", "r", "", "Path to resume file (.pdf, .docx, .txt)")
	analyzeCmd.Flags().StringVar(&analyzeResumeText, "resume-text", "", "Path to plain resume text file (skips format extraction)")
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to job record JSON file")
	analyzeCmd.Flags().StringVar(&analyzeJobText, "job-text", "", "Path to plain job description text file")
	analyzeCmd.Flags().StringVar(&analyzeJobTitle, "job-title", "", "Job title (used with --job-text)")
	analyzeCmd.Flags().StringSliceVar(&analyzeSkills, "skills", nil, "Required skills (used with --job-text)")
	analyzeCmd.Flags().StringVar(&analyzeJobsDir, "jobs-dir", "", "Directory of job record JSON files to score in batch")
	analyzeCmd.Flags().StringVarP(&analyzeOutDir, "out", "o", "", "Output directory for report JSON (default: stdout)")
	analyzeCmd.Flags().StringVarP(&analyzeConfigFile, "config", "c", "", "Path to JSON config file")
	analyzeCmd.Flags().BoolVar(&analyzeLegacy, "legacy", false, "Use the original scoring formula")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed analysis breakdown")
	analyzeCmd.Flags().IntVar(&analyzeMinKwLen, "min-keyword-length", 0, "Shortest keyword kept in the verbose keyword preview")
	analyzeCmd.Flags().IntVar(&analyzePhraseLen, "phrase-length", 0, "N-gram length for the verbose phrase preview (0 disables)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := loadAnalyzeConfig()
	if err != nil {
		return err
	}

	if cfg.Resume == "" {
		return fmt.Errorf("a resume is required (use --resume or --resume-text)")
	}

	record, err := loadResume(cfg)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stderr)
	if cfg.Verbose {
		printer.PrintResumeRecord(record)

		minLen := cfg.MinKeywordLength
		if minLen <= 0 {
			minLen = textproc.DefaultMinKeywordLength
		}
		keywords := textproc.ExtractKeywords(record.CleanedText, minLen)
		var phrases []string
		if cfg.PhraseLength > 1 {
			phrases = textproc.ExtractPhrases(record.CleanedText, cfg.PhraseLength)
		}
		printer.PrintKeywords(keywords, phrases)
	}

	switch {
	case cfg.JobsDir != "":
		return analyzeBatch(cfg, record, printer)
	case cfg.Job != "" || cfg.JobText != "":
		job, err := loadJob(cfg)
		if err != nil {
			return err
		}
		report, err := score(cfg, record, job)
		if err != nil {
			return err
		}
		if cfg.Verbose {
			printer.PrintMatchReport(report)
			printer.PrintRecommendations(report.Recommendations)
		}
		return emitReport(cfg, report, "match_report.json")
	default:
		return fmt.Errorf("a job is required (use --job, --job-text, or --jobs-dir)")
	}
}

// loadAnalyzeConfig merges CLI flags over the optional config file.
func loadAnalyzeConfig() (*config.Config, error) {
	flags := config.Config{
		Resume:           analyzeResumeFile,
		Job:              analyzeJobFile,
		JobText:          analyzeJobText,
		JobsDir:          analyzeJobsDir,
		Out:              analyzeOutDir,
		JobTitle:         analyzeJobTitle,
		Skills:           analyzeSkills,
		Legacy:           analyzeLegacy,
		Verbose:          analyzeVerbose,
		MinKeywordLength: analyzeMinKwLen,
		PhraseLength:     analyzePhraseLen,
	}
	if analyzeResumeText != "" {
		if flags.Resume != "" {
			return nil, fmt.Errorf("--resume and --resume-text are mutually exclusive")
		}
		flags.Resume = analyzeResumeText
	}

	if analyzeConfigFile != "" {
		fileCfg, err := config.LoadConfig(analyzeConfigFile)
		if err != nil {
			return nil, err
		}
		flags = flags.MergeWithDefaults(*fileCfg)
		// Bool flags always win on the command line; config supplies them
		// only when the flag is left at its default.
		flags.Legacy = flags.Legacy || fileCfg.Legacy
		flags.Verbose = flags.Verbose || fileCfg.Verbose
	}

	if err := flags.Validate(); err != nil {
		return nil, err
	}
	return &flags, nil
}

func loadResume(cfg *config.Config) (*types.ResumeRecord, error) {
	data, err := os.ReadFile(cfg.Resume)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}

	parser := resume.NewParser(nil)
	if analyzeResumeText != "" {
		return parser.ParseText(string(data)), nil
	}

	ext := filepath.Ext(cfg.Resume)
	record, err := parser.Parse(data, ext)
	if err != nil {
		return nil, fmt.Errorf("failed to parse resume: %w", err)
	}
	return record, nil
}

// loadJob builds a JobRecord from either a JSON file or a plain text
// description plus the --job-title/--skills flags.
func loadJob(cfg *config.Config) (*types.JobRecord, error) {
	if cfg.Job != "" {
		return loadJobFile(cfg.Job)
	}

	data, err := os.ReadFile(cfg.JobText)
	if err != nil {
		return nil, fmt.Errorf("failed to read job text file: %w", err)
	}
	job := &types.JobRecord{
		Title:          cfg.JobTitle,
		Description:    string(data),
		RequiredSkills: cfg.Skills,
	}
	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job record: %w", err)
	}
	return job, nil
}

func loadJobFile(path string) (*types.JobRecord, error) {
	if err := schemas.ValidateJobRecordFile(path); err != nil {
		var schemaLoadErr *schemas.SchemaLoadError
		if errors.As(err, &schemaLoadErr) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate job record against schema: %v\n", err)
		} else {
			return nil, fmt.Errorf("job record %s failed schema validation: %w", path, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	var job types.JobRecord
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job JSON %s: %w", path, err)
	}
	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job record %s: %w", path, err)
	}
	return &job, nil
}

func score(cfg *config.Config, record *types.ResumeRecord, job *types.JobRecord) (*types.MatchReport, error) {
	if cfg.Legacy {
		return matching.LegacyScore(record.RawText, job)
	}
	return matching.NewMatcher(nil).Analyze(record, job)
}

// batchResult pairs one scored job with its source file for the summary.
type batchResult struct {
	File   string
	Title  string
	Report *types.MatchReport
}

// analyzeBatch scores the resume against every .json job record in the
// configured directory, concurrently, then prints a ranked summary.
func analyzeBatch(cfg *config.Config, record *types.ResumeRecord, printer *observability.Printer) error {
	entries, err := os.ReadDir(cfg.JobsDir)
	if err != nil {
		return fmt.Errorf("failed to read jobs directory: %w", err)
	}

	var jobFiles []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		jobFiles = append(jobFiles, filepath.Join(cfg.JobsDir, entry.Name()))
	}
	if len(jobFiles) == 0 {
		return fmt.Errorf("no .json job records found in %s", cfg.JobsDir)
	}

	var (
		mu      sync.Mutex
		results []batchResult
	)

	g := new(errgroup.Group)
	g.SetLimit(batchWorkers)
	for _, path := range jobFiles {
		path := path
		g.Go(func() error {
			job, err := loadJobFile(path)
			if err != nil {
				return err
			}
			report, err := score(cfg, record, job)
			if err != nil {
				return fmt.Errorf("failed to score against %s: %w", path, err)
			}
			mu.Lock()
			results = append(results, batchResult{File: path, Title: job.Title, Report: report})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Highest score first; ties break on file name for stable output.
	sort.Slice(results, func(i, j int) bool {
		if results[i].Report.ATSScore != results[j].Report.ATSScore {
			return results[i].Report.ATSScore > results[j].Report.ATSScore
		}
		return results[i].File < results[j].File
	})

	for _, res := range results {
		title := res.Title
		if title == "" {
			title = filepath.Base(res.File)
		}
		fmt.Fprintf(os.Stdout, "%3d  %s\n", res.Report.ATSScore, title)
		if cfg.Verbose {
			printer.PrintMatchReport(res.Report)
		}
	}

	if cfg.Out != "" {
		for _, res := range results {
			base := strings.TrimSuffix(filepath.Base(res.File), ".json")
			if err := writeReport(cfg.Out, base+"_report.json", res.Report); err != nil {
				return err
			}
		}
	}
	return nil
}

func emitReport(cfg *config.Config, report *types.MatchReport, name string) error {
	if cfg.Out == "" {
		jsonBytes, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}
	return writeReport(cfg.Out, name, report)
}

func writeReport(dir, name string, report *types.MatchReport) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	outPath := filepath.Join(dir, name)
	if err := os.WriteFile(outPath, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Report written: %s\n", outPath)
	return nil
}
