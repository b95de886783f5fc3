package scanner

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mongoshift/mongoshift/internal/domain"
)

// Examples matched by these patterns:
//
//	@Entity
//	@Table(name = "owners")
//	public class Owner {
//	    @Id
//	    @GeneratedValue
//	    private Integer id;
//
//	    @OneToMany(targetEntity = Pet.class)
//	    private Set<Pet> pets;
//	}
//
//	public interface OwnerRepository extends JpaRepository<Owner, Integer> {
//	    @Query("SELECT o FROM Owner o WHERE o.city = ?1")
//	    List<Owner> findByCity(String city);
//	}
var (
	reEntityProbe = regexp.MustCompile(`@Entity|@Table|@Document`)

	reRepoProbes = []*regexp.Regexp{
		regexp.MustCompile(`interface\s+\w+Repository`),
		regexp.MustCompile(`class\s+\w+Repository`),
		regexp.MustCompile(`extends\s+\w*Repository`),
		regexp.MustCompile(`extends\s+JpaRepository`),
		regexp.MustCompile(`extends\s+CrudRepository`),
	}

	reClassName = regexp.MustCompile(`class\s+(\w+)`)
	reTypeName  = regexp.MustCompile(`(?:interface|class)\s+(\w+)`)

	// @Word or @Word(args); matched anywhere in the file, so type-,
	// field- and method-level annotations all land in one list.
	reAnnotation = regexp.MustCompile(`@(\w+)(?:\(.*?\))?`)

	reTableName = regexp.MustCompile(`@Table\s*\(\s*name\s*=\s*["']([^"']+)["']`)

	// Annotation run + visibility + type + identifier + terminator.
	// Declarations spanning attribute lines or multiple lines are not
	// matched.
	reField = regexp.MustCompile(`(?:@(\w+)(?:\(.*?\))?[\s\n]*)*(?:private|protected|public)\s+(\w+(?:<.*?>)?)\s+(\w+)\s*;`)

	// Interface-style abstract method declarations with a trailing
	// terminator.
	reMethod = regexp.MustCompile(`(?:@(\w+)(?:\(.*?\))?[\s\n]*)*(?:public|protected|private)?\s+(\w+(?:<.*?>)?)\s+(\w+)\s*\((.*?)\)\s*;`)

	reExtends        = regexp.MustCompile(`extends\s+([\w\s,<>]+)`)
	reExtendsGeneric = regexp.MustCompile(`extends\s+\w+<(\w+)`)
	reWord           = regexp.MustCompile(`\w+`)
	reParam          = regexp.MustCompile(`(\w+(?:<.*?>)?)\s+(\w+)`)
	reQuery          = regexp.MustCompile(`@Query\s*\(\s*["']([^"']+)["']`)
)

func isEntity(content string) bool {
	return reEntityProbe.MatchString(content)
}

func isRepository(content string) bool {
	for _, re := range reRepoProbes {
		if re.MatchString(content) {
			return true
		}
	}
	return false
}

func parseEntity(content, path string) domain.SourceEntity {
	name := typeNameOrBasename(reClassName, content, path)

	var tableName string
	if m := reTableName.FindStringSubmatch(content); m != nil {
		tableName = m[1]
	}

	var fields []domain.SourceField
	for _, idx := range reField.FindAllStringSubmatchIndex(content, -1) {
		// Annotations are re-extracted from the matched run so each
		// field only sees the annotations directly preceding it.
		matched := content[idx[0]:idx[1]]
		annotations := annotationNames(matched)
		fieldType := content[idx[4]:idx[5]]
		fieldName := content[idx[6]:idx[7]]

		field := domain.SourceField{
			Name:        fieldName,
			Type:        fieldType,
			Annotations: annotations,
			IsID:        containsString(annotations, "Id"),
		}

		for _, kind := range domain.RelationshipKinds {
			if !containsString(annotations, kind) {
				continue
			}
			field.IsRelationship = true
			field.RelationshipKind = kind
			reTarget := regexp.MustCompile(fmt.Sprintf(`@%s\s*\(.*?targetEntity\s*=\s*(\w+)\.class`, kind))
			if m := reTarget.FindStringSubmatch(matched); m != nil {
				field.TargetEntity = m[1]
			}
			break
		}

		fields = append(fields, field)
	}

	return domain.SourceEntity{
		Name:        name,
		FilePath:    path,
		Fields:      fields,
		Annotations: annotationNames(content),
		TableName:   tableName,
	}
}

func parseRepository(content, path string) domain.SourceRepository {
	name := typeNameOrBasename(reTypeName, content, path)

	var extends []string
	if m := reExtends.FindStringSubmatch(content); m != nil {
		extends = reWord.FindAllString(m[1], -1)
	}

	// Owning entity: generic parameter on the supertype first, then the
	// Repository suffix of the type's own name.
	var entityName string
	if m := reExtendsGeneric.FindStringSubmatch(content); m != nil {
		entityName = m[1]
	}
	if entityName == "" && strings.HasSuffix(name, "Repository") {
		entityName = strings.TrimSuffix(name, "Repository")
	}

	var methods []domain.SourceMethod
	for _, idx := range reMethod.FindAllStringSubmatchIndex(content, -1) {
		matched := content[idx[0]:idx[1]]
		returnType := content[idx[4]:idx[5]]
		methodName := content[idx[6]:idx[7]]
		paramsStr := content[idx[8]:idx[9]]

		var params []domain.Parameter
		for _, part := range strings.Split(paramsStr, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if m := reParam.FindStringSubmatch(part); m != nil {
				params = append(params, domain.Parameter{Type: m[1], Name: m[2]})
			}
		}

		var query string
		if m := reQuery.FindStringSubmatch(matched); m != nil {
			query = m[1]
		}

		methods = append(methods, domain.SourceMethod{
			Name:       methodName,
			ReturnType: returnType,
			Parameters: params,
			Query:      query,
		})
	}

	return domain.SourceRepository{
		Name:       name,
		FilePath:   path,
		EntityName: entityName,
		Methods:    methods,
		Extends:    extends,
	}
}

func typeNameOrBasename(re *regexp.Regexp, content, path string) string {
	if m := re.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	return strings.TrimSuffix(filepath.Base(path), ".java")
}

func annotationNames(s string) []string {
	var names []string
	for _, m := range reAnnotation.FindAllStringSubmatch(s, -1) {
		names = append(names, m[1])
	}
	return names
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
