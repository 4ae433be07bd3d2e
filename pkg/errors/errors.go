package errors

import "errors"

// Error message constants for the esio application
const (
	// File processing errors
	ErrMsgFailedToReadFile   = "failed to read file"
	ErrMsgFailedToWriteFile  = "failed to write file"
	ErrMsgFailedToReadStdin  = "failed to read standard input"
	ErrMsgFailedToStatFile   = "failed to stat file"
	ErrMsgFailedToWriteDiff  = "failed to write diff"
	ErrMsgFailedToLoadConfig = "failed to load configuration"

	// Directory processing errors
	ErrMsgFailedToCheckPath       = "failed to check path"
	ErrMsgFailedToFindSourceFiles = "failed to find source files in directory"
	ErrMsgFilesFailedToProcess    = "%d files failed to process"
	ErrMsgFilesWouldChange        = "%d files would be rewritten"
	ErrMsgInPlaceRequiresFile     = "--in-place cannot be used when reading standard input"
	ErrMsgConflictingOutputFlags  = "--in-place, --diff and --check are mutually exclusive"

	// Info/warning messages
	WarnMsgProcessingDirWithoutInPlace = "Processing directory without --in-place flag. No files will be modified."
	InfoMsgUseInPlaceFlag              = "Use --in-place, --diff or --check, or specify a single file for stdout output."
	InfoMsgNoSourceFilesFound          = "No source files found in directory"
	InfoMsgFoundSourceFiles            = "Found source files"
	InfoMsgProjectRoot                 = "Project root"
	InfoMsgProcessedFile               = "Processed"
	InfoMsgUnchangedFile               = "Unchanged"
	InfoMsgErrorProcessing             = "Error processing file"
	InfoMsgProcessedCount              = "Processed %d files successfully (%s rewritten)"
	InfoMsgErrorCount                  = ", %d files had errors"
	InfoMsgWouldRewrite                = "would rewrite %s"
)

// Sentinel errors returned by the command
var (
	ErrFilesChanged  = errors.New("files are not optimized")
	ErrFilesFailed   = errors.New("files failed to process")
	ErrInvalidOutput = errors.New("invalid output mode")
)
